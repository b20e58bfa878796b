package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/postline/postline/internal/common"
	"github.com/postline/postline/internal/server/models"
)

func TestWithAuth_MissingHeader(t *testing.T) {
	s := newServer(nil, nil, nil, nil, &fakeGuard{user: &models.User{ID: "u1"}})

	h := s.withAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called without a token")
	})

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/posts", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if w.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Fatalf("missing WWW-Authenticate header")
	}
}

func TestWithAuth_WrongScheme(t *testing.T) {
	s := newServer(nil, nil, nil, nil, &fakeGuard{user: &models.User{ID: "u1"}})

	h := s.withAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called with a non-bearer header")
	})

	r := httptest.NewRequest(http.MethodGet, "/posts", nil)
	r.Header.Set(common.AuthorizationHeaderName, "Basic dXNlcjpwdw==")
	w := httptest.NewRecorder()
	h(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestWithAuth_InvalidToken(t *testing.T) {
	s := newServer(nil, nil, nil, nil, &fakeGuard{err: common.ErrUnauthenticated})

	h := s.withAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called with an invalid token")
	})

	r := httptest.NewRequest(http.MethodGet, "/posts", nil)
	r.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+"bad")
	w := httptest.NewRecorder()
	h(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestWithAuth_StoreDown(t *testing.T) {
	s := newServer(nil, nil, nil, nil, &fakeGuard{err: common.ErrDependencyUnavailable})

	h := s.withAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called when the store is down")
	})

	r := httptest.NewRequest(http.MethodGet, "/posts", nil)
	r.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+"tok")
	w := httptest.NewRecorder()
	h(w, r)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500: store failure is not an auth failure", w.Code)
	}
}

func TestWithAuth_PassesUserToHandler(t *testing.T) {
	s := newServer(nil, nil, nil, nil, &fakeGuard{user: &models.User{ID: "u1", Email: "a@x.com"}})

	var got *models.User
	h := s.withAuth(func(w http.ResponseWriter, r *http.Request) {
		u, ok := userFromContext(r.Context())
		if !ok {
			t.Fatal("user missing from context")
		}
		got = u
	})

	r := httptest.NewRequest(http.MethodGet, "/posts", nil)
	r.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+"tok")
	h(httptest.NewRecorder(), r)

	if got == nil || got.ID != "u1" {
		t.Fatalf("unexpected user: %+v", got)
	}
}
