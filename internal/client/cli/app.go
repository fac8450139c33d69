package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/mvolkova/taskquest/internal/client/api"
	"github.com/mvolkova/taskquest/internal/client/config"
	"github.com/mvolkova/taskquest/internal/client/session"
	"github.com/mvolkova/taskquest/internal/client/tokenstore"
	"github.com/mvolkova/taskquest/internal/client/todos"
	"github.com/mvolkova/taskquest/internal/logging"
)

// App wires the client core together: token store, API client, session
// manager, and the task collection manager, plus the interactive surface.
type App struct {
	config  *config.Config
	session *session.Manager
	tasks   *todos.Manager
	api     api.Client
	log     logging.Logger
	offline bool
	reader  *bufio.Reader
}

// NewApp builds the application from configuration. In offline mode the task
// store is the local file and no API client is constructed; otherwise the
// remote store talks to cfg.APIBaseURL.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	tokens := tokenstore.NewFileStore(cfg.TokenFile)

	var (
		apiClient    api.Client
		logoutClient session.LogoutClient
		store        todos.Store
	)

	if cfg.Offline {
		store = todos.NewLocalStore(cfg.TasksFile, log)
	} else {
		httpClient := api.NewHTTPClient(cfg.APIBaseURL, tokens, cfg.RequestTimeout)
		apiClient = httpClient
		logoutClient = httpClient
		store = todos.NewRemoteStore(httpClient)
	}

	return &App{
		config:  cfg,
		session: session.NewManager(tokens, logoutClient, session.StartupStrategy(cfg.StartupStrategy), log),
		tasks:   todos.NewManager(store, log),
		api:     apiClient,
		log:     log,
		offline: cfg.Offline,
		reader:  bufio.NewReader(os.Stdin),
	}
}

// Run settles the session and enters the REPL.
func (a *App) Run(ctx context.Context) {
	a.session.Init(ctx)
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// isLoggedIn gates task commands. The offline variant has no session to
// check; everything is available.
func (a *App) isLoggedIn() bool {
	return a.offline || a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if a.offline {
		return "(offline)"
	}
	if !a.session.Settled() {
		return "(...)"
	}
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	if a.session.IsAuthenticated() {
		return "(signed in)"
	}
	return ""
}
