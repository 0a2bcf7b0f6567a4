// Package cli is the interactive TaskHub client: a small REPL over the
// backend HTTP API with prompt-based input for task fields and credentials.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/lgmarques/taskhub/internal/client/api"
	"github.com/lgmarques/taskhub/internal/client/config"
)

// apiClient is the backend surface the CLI commands need. *api.Client
// satisfies it; tests provide a stub.
type apiClient interface {
	Authenticated() bool
	Logout()
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) error
	CreateTask(ctx context.Context, data api.TaskData) (*api.Task, error)
	ListTasks(ctx context.Context) ([]api.Task, error)
	GetTask(ctx context.Context, id int64) (*api.Task, error)
	UpdateTask(ctx context.Context, id int64, data api.TaskData) (*api.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

type App struct {
	config    *config.Config
	api       apiClient
	userEmail string
	reader    *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerEndpointAddr, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.api.Authenticated()
}

func (a *App) getStatus() string {
	if a.userEmail == "" {
		return "guest"
	}
	return a.userEmail
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to TaskHub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
