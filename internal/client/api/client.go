// Package api talks to the YFinanceApp backend over HTTP/JSON. It owns the
// wire contract of every operation, the shared transport that injects the
// bearer token into each request, and the mapping from backend failures to
// the client's error taxonomy.
package api

import (
	"context"

	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/models"
)

// Client is the full set of backend operations the views depend on.
//
// All methods honor context cancellation/timeouts. Errors are classified:
// transport failures match common.ErrUnavailable, non-JSON error bodies
// match common.ErrServerError, auth failures match common.ErrUnauthorized,
// and structured backend errors come back as *APIError with the verbatim
// message.
type Client interface {
	Login(ctx context.Context, username, password string) (string, *models.User, error)
	Signup(ctx context.Context, username, email, password string) error
	ValidUser(ctx context.Context, identifier string) (bool, error)
	Logout(ctx context.Context) error

	Analyze(ctx context.Context, ticker, exchange string) (*models.AnalyzeResult, error)
	Predict(ctx context.Context, ticker string) (*models.Forecast, error)
	MonteCarlo(ctx context.Context, stocks []string) (*models.MonteCarloResult, error)
	TechnicalSignal(ctx context.Context, ticker string) (*models.TechnicalSignal, error)

	HasWatchlist(ctx context.Context, userID int64) (bool, error)
	GetWatchlist(ctx context.Context, userID int64) ([]models.WatchlistEntry, error)
	AddWatchlist(ctx context.Context, userID int64, ticker, notes string) (*models.WatchlistEntry, error)
	DeleteWatchlist(ctx context.Context, itemID int64) error
}
