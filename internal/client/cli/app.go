// Package cli implements the interactive Postline client.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/postline/postline/internal/client/api"
	"github.com/postline/postline/internal/client/config"
)

type App struct {
	config    *config.Config
	client    *api.Client
	userEmail string
	reader    *bufio.Reader
	out       io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	apiClient := api.NewClient(c.ServerEndpointAddr, c.RequestTimeout)

	return &App{
		config: c,
		client: apiClient,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.client.IsLoggedIn()
}

func (a *App) getStatus() string {
	if a.userEmail != "" {
		return "(" + a.userEmail + ")"
	}
	return ""
}

func (a *App) requestCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout+time.Second)
}
