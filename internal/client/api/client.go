// Package api is a thin HTTP client for the Postline backend. It keeps the
// bearer token obtained at login and attaches it to subsequent requests.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/postline/postline/internal/common"
)

// ErrUnavailable indicates the server could not be reached at all, as opposed
// to the server answering with an error.
var ErrUnavailable = errors.New("server unavailable")

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// IsLoggedIn reports whether a login token is held.
func (c *Client) IsLoggedIn() bool {
	return c.token != ""
}

// Logout drops the held token.
func (c *Client) Logout() {
	c.token = ""
}

// ---- wire types ----

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type likeRequest struct {
	PostID    string `json:"post_id"`
	Direction int    `json:"direction"`
}

type postRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published *bool  `json:"published,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// User mirrors the backend user representation.
type User struct {
	ID      string    `json:"id"`
	Email   string    `json:"email"`
	Created time.Time `json:"created"`
}

// Post mirrors the backend post representation.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	Created   time.Time `json:"created"`
	Likes     int64     `json:"likes"`
}

// ---- request plumbing ----

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {

	var buf *bytes.Buffer
	if body != nil {
		buf = &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return err
		}
	}

	var r *http.Request
	var err error
	if buf != nil {
		r, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	} else {
		r, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return err
	}

	r.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		r.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+c.token)
	}

	resp, err := c.httpClient.Do(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var e errorResponse
		if decErr := json.NewDecoder(resp.Body).Decode(&e); decErr == nil && e.Error != "" {
			return fmt.Errorf("server: %s (%d)", e.Error, resp.StatusCode)
		}
		return fmt.Errorf("server: status %d", resp.StatusCode)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(out)
	}

	return nil
}

// ---- auth ----

func (c *Client) Register(ctx context.Context, email string, password []byte) (*User, error) {
	var user User
	err := c.do(ctx, http.MethodPost, "/users", credentialsRequest{Email: email, Password: string(password)}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and stores the returned bearer token for later calls.
func (c *Client) Login(ctx context.Context, email string, password []byte) error {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/login", credentialsRequest{Email: email, Password: string(password)}, &resp)
	if err != nil {
		return err
	}
	c.token = resp.AccessToken
	return nil
}

// ---- posts ----

func (c *Client) CreatePost(ctx context.Context, title, content string, published bool) (*Post, error) {
	var post Post
	err := c.do(ctx, http.MethodPost, "/posts", postRequest{Title: title, Content: content, Published: &published}, &post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) GetPost(ctx context.Context, id string) (*Post, error) {
	var post Post
	err := c.do(ctx, http.MethodGet, "/posts/"+url.PathEscape(id), nil, &post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) ListPosts(ctx context.Context, limit, offset int, search string) ([]Post, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	if search != "" {
		q.Set("search", search)
	}

	path := "/posts"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var posts []Post
	if err := c.do(ctx, http.MethodGet, path, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+url.PathEscape(id), nil, nil)
}

// ---- likes ----

func (c *Client) Like(ctx context.Context, postID string) error {
	return c.do(ctx, http.MethodPost, "/like", likeRequest{PostID: postID, Direction: 1}, nil)
}

func (c *Client) Unlike(ctx context.Context, postID string) error {
	return c.do(ctx, http.MethodPost, "/like", likeRequest{PostID: postID, Direction: 0}, nil)
}
