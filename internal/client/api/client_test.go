package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second)
}

func TestLogin_StoresToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var req credentialsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@x.com", req.Email)

		json.NewEncoder(w).Encode(tokenResponse{AccessToken: "tok-1", TokenType: "bearer"})
	})

	require.False(t, c.IsLoggedIn())
	err := c.Login(context.Background(), "a@x.com", []byte("pw"))
	require.NoError(t, err)
	assert.True(t, c.IsLoggedIn())

	c.Logout()
	assert.False(t, c.IsLoggedIn())
}

func TestLogin_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(errorResponse{Error: "invalid credentials"})
	})

	err := c.Login(context.Background(), "a@x.com", []byte("bad"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.False(t, c.IsLoggedIn())
}

func TestLogin_ServerUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 500*time.Millisecond)

	err := c.Login(context.Background(), "a@x.com", []byte("pw"))
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestRegister(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(User{ID: "u1", Email: "a@x.com"})
	})

	user, err := c.Register(context.Background(), "a@x.com", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestCreatePost_SendsBearerToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Post{ID: "p1", Title: "hi"})
	})
	c.token = "tok-1"

	post, err := c.CreatePost(context.Background(), "hi", "body", true)
	require.NoError(t, err)
	assert.Equal(t, "p1", post.ID)
}

func TestListPosts_QueryParams(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "5", q.Get("limit"))
		assert.Equal(t, "10", q.Get("offset"))
		assert.Equal(t, "go", q.Get("search"))
		json.NewEncoder(w).Encode([]Post{{ID: "p1"}, {ID: "p2"}})
	})
	c.token = "tok-1"

	posts, err := c.ListPosts(context.Background(), 5, 10, "go")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p1", posts[0].ID)
}

func TestLike_Directions(t *testing.T) {
	var got likeRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/like", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})
	c.token = "tok-1"

	require.NoError(t, c.Like(context.Background(), "p1"))
	assert.Equal(t, likeRequest{PostID: "p1", Direction: 1}, got)

	require.NoError(t, c.Unlike(context.Background(), "p1"))
	assert.Equal(t, likeRequest{PostID: "p1", Direction: 0}, got)
}

func TestDeletePost_NoContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	c.token = "tok-1"

	require.NoError(t, c.DeletePost(context.Background(), "p1"))
}
