package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync/atomic"

	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/config"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/flash"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/models"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/services"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/session"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/viewstate"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/logging"
)

// App is the terminal client. It owns the per-view transient state (the
// cached watchlist, request generations) and dispatches REPL commands to
// the application services.
type App struct {
	config    *config.Config
	session   *session.Store
	flash     *flash.Store
	auth      services.AuthService
	watchlist services.WatchlistService
	market    services.MarketService
	log       logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// cached is the watchlist view's local copy; replaced wholesale on
	// fetch, updated optimistically on add/delete.
	cached []models.WatchlistEntry

	// expired is set by the transport's auth-failure hook, possibly from
	// another goroutine, and drained by the REPL loop.
	expired atomic.Bool

	analyzeGen viewstate.Guard
	predictGen viewstate.Guard
	monteGen   viewstate.Guard
	signalGen  viewstate.Guard
}

// NewApp assembles the client from its already-constructed dependencies.
// Wiring (config, DB, HTTP transport) happens in the cmd entry point.
func NewApp(cfg *config.Config, sess *session.Store, fl *flash.Store,
	auth services.AuthService, wl services.WatchlistService, mkt services.MarketService,
	log logging.Logger) *App {
	return &App{
		config:    cfg,
		session:   sess,
		flash:     fl,
		auth:      auth,
		watchlist: wl,
		market:    mkt,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// SessionExpired is the single expiry policy, wired as the transport's
// OnAuthFailure hook. It may run on a transport goroutine, so it only
// touches goroutine-safe state; the REPL drains the flag on its next turn
// and drops the user back to the login prompt.
func (a *App) SessionExpired() {
	a.flash.Set("Session expired. Please log in again.")
	if err := a.session.Clear(context.Background()); err != nil {
		a.log.Error(context.Background(), "clearing expired session", "error", err)
	}
	a.expired.Store(true)
}

// reqCtx derives a per-request context with the configured timeout.
func (a *App) reqCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
