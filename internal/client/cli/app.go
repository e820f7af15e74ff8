package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/oauth"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/prefs"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/client/storage"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// rememberStore keeps the "Remember me" email between runs.
type rememberStore interface {
	Save(ctx context.Context, email string, remember bool) error
	Email(ctx context.Context) (string, error)
	Forget(ctx context.Context) error
}

// linkSource builds OAuth sign-in links.
type linkSource interface {
	URL(provider, from string) (string, error)
	Configured() []string
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	session  services.SessionService
	remember rememberStore
	links    linkSource
	router   *Router
	reader   *bufio.Reader
	out      io.Writer

	closers []io.Closer
}

// NewApp wires the local store, the API client and the session controller
// from c. The caller must call Run, which releases everything on return.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("init local store: %w", err)
	}

	api, err := client.NewHTTPClient(c.ServerEndpoint, logger.With("component", "api"))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	router := NewRouter()
	tracker := services.NewTracker(loadingIndicator(ctx, logger))
	session := services.NewController(api, NewToaster(os.Stdout), router, tracker, logger)

	links := oauth.NewLinks(
		oauth.Provider{ClientID: c.GoogleClientID, RedirectURL: c.GoogleRedirectURL},
		oauth.Provider{ClientID: c.GitHubClientID, RedirectURL: c.GitHubRedirectURL},
	)

	a := &App{
		config:   c,
		logger:   logger,
		session:  session,
		remember: prefs.NewRemembered(db),
		links:    links,
		router:   router,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		closers:  []io.Closer{api, dbCloser{db}},
	}
	return a, nil
}

// Run shows the home screen and blocks in the REPL until the user exits or
// ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	printlnFn("Welcome to gophauth (type 'help' for commands)")
	a.router.Navigate(services.RouteHome)
	a.follow(ctx)

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.User() != nil
}

// status renders the prompt marker: the user's name and a loading flag.
func (a *App) status() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Name
	}
	if a.session.Loading() {
		if s != "" {
			s += " "
		}
		s += "loading"
	}
	if s != "" {
		s = fmt.Sprintf("(%s) ", s)
	}
	return s
}

// LoadingMessage is printed each time the tracker goes from idle to busy.
const LoadingMessage = "Loading..."

// loadingIndicator returns the tracker hook that shows the busy indicator.
// Commands block while requests run, so the line is printed as soon as the
// first request starts rather than waiting for the next prompt.
func loadingIndicator(ctx context.Context, logger logging.Logger) func(active bool) {
	return func(active bool) {
		logger.Debug(ctx, "loading changed", "active", active)
		if active {
			printlnFn(LoadingMessage)
		}
	}
}

func (a *App) close() {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	if err := errors.Join(errs...); err != nil {
		a.logger.Warn(context.Background(), "shutdown", "error", err)
	}
}

type dbCloser struct{ db *sql.DB }

func (d dbCloser) Close() error { return d.db.Close() }
