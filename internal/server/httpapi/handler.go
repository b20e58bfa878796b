package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/postline/postline/internal/common"
	"github.com/postline/postline/internal/server/models"
)

// ---- wire types ----

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type userResponse struct {
	ID      string    `json:"id"`
	Email   string    `json:"email"`
	Created time.Time `json:"created"`
}

type postRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published *bool  `json:"published"`
}

type postResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	Created   time.Time `json:"created"`
	Likes     int64     `json:"likes"`
}

type likeRequest struct {
	PostID    string `json:"post_id"`
	Direction int    `json:"direction"` // 1 = like, 0 = unlike
}

type messageResponse struct {
	Message string `json:"message"`
}

type uploadURLResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
}

type downloadURLResponse struct {
	DownloadURL string `json:"download_url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- error mapping ----

func statusFromError(err error) int {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusForbidden
	case errors.Is(err, common.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrNotLiked):
		return http.StatusNotFound
	case errors.Is(err, common.ErrEmailTaken), errors.Is(err, common.ErrAlreadyLiked):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// messageFromError keeps client-visible messages at the coarse category
// level; the cause never leaks beyond it.
func messageFromError(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return "invalid credentials"
	case errors.Is(err, common.ErrUnauthenticated):
		return "could not validate credentials"
	case errors.Is(err, common.ErrForbidden):
		return "not authorized to perform requested action"
	case errors.Is(err, common.ErrNotLiked):
		return "post not liked"
	case errors.Is(err, common.ErrorNotFound):
		return "not found"
	case errors.Is(err, common.ErrEmailTaken):
		return "email already registered"
	case errors.Is(err, common.ErrAlreadyLiked):
		return "post already liked"
	default:
		return "internal error"
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFromError(err), errorResponse{Error: messageFromError(err)})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Created: u.CreatedAt}
}

func toPostResponse(p *models.Post, likes int64) postResponse {
	return postResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Title:     p.Title,
		Content:   p.Content,
		Published: p.Published,
		Created:   p.CreatedAt,
		Likes:     likes,
	}
}

// ---- auth ----

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeBadRequest(w, "email and password are required")
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, common.ErrInvalidCredentials) {
			s.logger.Error(r.Context(), "login failed", "error", err.Error())
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: common.TokenTypeBearer})
}

// ---- users ----

func (s *HTTPServer) handleCreateUser(w http.ResponseWriter, r *http.Request) {

	s.logger.Info(r.Context(), "Registration request")

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeBadRequest(w, "email and password are required")
		return
	}

	user, err := s.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, common.ErrEmailTaken) {
			s.logger.Error(r.Context(), "registration failed", "error", err.Error())
		}
		writeError(w, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func (s *HTTPServer) handleGetUser(w http.ResponseWriter, r *http.Request) {

	user, err := s.users.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// ---- posts ----

func (s *HTTPServer) handleCreatePost(w http.ResponseWriter, r *http.Request) {

	caller, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrUnauthenticated)
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Title == "" {
		writeBadRequest(w, "title is required")
		return
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	post, err := s.posts.Create(r.Context(), caller, req.Title, req.Content, published)
	if err != nil {
		s.logger.Error(r.Context(), "create post failed", "error", err.Error())
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPostResponse(post, 0))
}

func (s *HTTPServer) handleListPosts(w http.ResponseWriter, r *http.Request) {

	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	posts, err := s.posts.List(r.Context(), limit, offset, q.Get("search"))
	if err != nil {
		s.logger.Error(r.Context(), "list posts failed", "error", err.Error())
		writeError(w, err)
		return
	}

	resp := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, toPostResponse(&p.Post, p.Likes))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *HTTPServer) handleGetPost(w http.ResponseWriter, r *http.Request) {

	post, err := s.posts.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(&post.Post, post.Likes))
}

func (s *HTTPServer) handleUpdatePost(w http.ResponseWriter, r *http.Request) {

	caller, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrUnauthenticated)
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Title == "" {
		writeBadRequest(w, "title is required")
		return
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	post, err := s.posts.Update(r.Context(), caller, r.PathValue("id"), req.Title, req.Content, published)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(post, 0))
}

func (s *HTTPServer) handleDeletePost(w http.ResponseWriter, r *http.Request) {

	caller, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrUnauthenticated)
		return
	}

	if err := s.posts.Delete(r.Context(), caller, r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ---- likes ----

const (
	directionLike   = 1
	directionUnlike = 0
)

func (s *HTTPServer) handleLike(w http.ResponseWriter, r *http.Request) {

	caller, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrUnauthenticated)
		return
	}

	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.PostID == "" {
		writeBadRequest(w, "post_id is required")
		return
	}

	switch req.Direction {
	case directionLike:
		if err := s.likes.Like(r.Context(), caller, req.PostID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, messageResponse{Message: "post liked"})
	case directionUnlike:
		if err := s.likes.Unlike(r.Context(), caller, req.PostID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, messageResponse{Message: "like removed"})
	default:
		writeBadRequest(w, "direction must be 0 or 1")
	}
}

// ---- media ----

func (s *HTTPServer) handleMediaUploadURL(w http.ResponseWriter, r *http.Request) {

	key, url, err := s.media.GetPresignedPutURL(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "presign put failed", "error", err.Error())
		writeError(w, common.ErrorInternal)
		return
	}

	writeJSON(w, http.StatusCreated, uploadURLResponse{Key: key, UploadURL: url})
}

func (s *HTTPServer) handleMediaDownloadURL(w http.ResponseWriter, r *http.Request) {

	key := r.URL.Query().Get("key")
	if key == "" {
		writeBadRequest(w, "key is required")
		return
	}

	url, err := s.media.GetPresignedGetURL(r.Context(), key)
	if err != nil {
		s.logger.Error(r.Context(), "presign get failed", "error", err.Error())
		writeError(w, common.ErrorInternal)
		return
	}

	writeJSON(w, http.StatusOK, downloadURLResponse{DownloadURL: url})
}
