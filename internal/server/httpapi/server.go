// Package httpapi exposes the posting service over HTTP/JSON.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/postline/postline/internal/logging"
	"github.com/postline/postline/internal/server/models"
)

// Service surfaces consumed by the handlers. Kept narrow so tests can swap
// in fakes.
type userSvc interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type postSvc interface {
	Create(ctx context.Context, caller *models.User, title, content string, published bool) (*models.Post, error)
	Get(ctx context.Context, id string) (*models.PostWithLikes, error)
	List(ctx context.Context, limit, offset int, search string) ([]*models.PostWithLikes, error)
	Update(ctx context.Context, caller *models.User, id, title, content string, published bool) (*models.Post, error)
	Delete(ctx context.Context, caller *models.User, id string) error
}

type likeSvc interface {
	Like(ctx context.Context, caller *models.User, postID string) error
	Unlike(ctx context.Context, caller *models.User, postID string) error
}

type mediaSvc interface {
	GetPresignedPutURL(ctx context.Context) (string, string, error)
	GetPresignedGetURL(ctx context.Context, key string) (string, error)
}

type accessGuard interface {
	Authenticate(ctx context.Context, presentedToken string) (*models.User, error)
}

type HTTPServer struct {
	address string
	logger  logging.Logger
	users   userSvc
	posts   postSvc
	likes   likeSvc
	media   mediaSvc
	guard   accessGuard
}

func NewHTTPServer(a string, l logging.Logger, us userSvc, ps postSvc, ls likeSvc, ms mediaSvc, g accessGuard) (*HTTPServer, error) {
	return &HTTPServer{
		address: a,
		logger:  l.With("module", "http_server"),
		users:   us,
		posts:   ps,
		likes:   ls,
		media:   ms,
		guard:   g,
	}, nil
}

func (s *HTTPServer) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /users", s.handleCreateUser)
	mux.HandleFunc("GET /users/{id}", s.handleGetUser)

	mux.HandleFunc("POST /posts", s.withAuth(s.handleCreatePost))
	mux.HandleFunc("GET /posts", s.withAuth(s.handleListPosts))
	mux.HandleFunc("GET /posts/{id}", s.withAuth(s.handleGetPost))
	mux.HandleFunc("PUT /posts/{id}", s.withAuth(s.handleUpdatePost))
	mux.HandleFunc("DELETE /posts/{id}", s.withAuth(s.handleDeletePost))

	mux.HandleFunc("POST /like", s.withAuth(s.handleLike))

	mux.HandleFunc("POST /media/upload-url", s.withAuth(s.handleMediaUploadURL))
	mux.HandleFunc("GET /media/download-url", s.withAuth(s.handleMediaDownloadURL))

	return mux
}

// Run starts the HTTP server and blocks until ctx is canceled or the
// listener fails.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
