// Package cli implements the interactive recetario client. It is a small
// REPL: the user registers or logs in, then browses and edits recipes and
// comments through the HTTP API.
package cli

import (
	"bufio"
	"os"

	"github.com/dvelasco/recetario/internal/client/api"
	"github.com/dvelasco/recetario/internal/client/config"
)

type App struct {
	config   *config.Config
	api      *api.Client
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	apiClient := api.NewClient(c.ServerBaseURL, c.RequestTimeout)
	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.api.IsLoggedIn()
}
