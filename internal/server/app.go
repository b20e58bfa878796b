// Package server initializes and runs the posting service backend.
// It opens the database, applies migrations, wires the services together,
// handles graceful shutdown, and starts the HTTP server.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/postline/postline/internal/logging"
	"github.com/postline/postline/internal/server/auth"
	"github.com/postline/postline/internal/server/config"
	"github.com/postline/postline/internal/server/httpapi"
	"github.com/postline/postline/internal/server/repositories/repomanager"
	"github.com/postline/postline/internal/server/services"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	userService  *services.UserService
	postService  *services.PostService
	likeService  *services.LikeService
	mediaService *services.MediaService
	guard        *auth.Guard
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	hasher := auth.NewBcryptHasher(c.BcryptCost)
	guard := auth.NewGuard(m.Users(db), c.SecretKey)

	us := services.NewUserService(db, m, hasher, c)
	ps := services.NewPostService(db, m, guard)
	ls := services.NewLikeService(db, m)
	ms := services.NewMediaService(c)

	return &App{
		config:       c,
		logger:       logger,
		db:           db,
		userService:  us,
		postService:  ps,
		likeService:  ls,
		mediaService: ms,
		guard:        guard,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := httpapi.NewHTTPServer(app.config.EndpointAddr, app.logger,
		app.userService, app.postService, app.likeService, app.mediaService, app.guard)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
