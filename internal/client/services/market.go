package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/api"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/models"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/common"
)

// MarketService wraps the analytics endpoints: per-ticker analysis, price
// prediction, technical signal, and the portfolio Monte Carlo simulation.
type MarketService interface {
	Analyze(ctx context.Context, ticker string) (*models.AnalyzeResult, error)
	Predict(ctx context.Context, ticker string) (*models.Forecast, error)
	TechnicalSignal(ctx context.Context, ticker string) (*models.TechnicalSignal, error)
	MonteCarlo(ctx context.Context, watchlist []models.WatchlistEntry) (*models.MonteCarloResult, error)
}

type marketService struct {
	client          api.Client
	defaultExchange string
}

// NewMarketService constructs a MarketService. defaultExchange is the
// exchange suffix appended to every analyze request (e.g. "NS").
func NewMarketService(client api.Client, defaultExchange string) MarketService {
	return &marketService{client: client, defaultExchange: defaultExchange}
}

func (m *marketService) Analyze(ctx context.Context, ticker string) (*models.AnalyzeResult, error) {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return nil, fmt.Errorf("%w: ticker is required", common.ErrValidation)
	}
	return m.client.Analyze(ctx, ticker, m.defaultExchange)
}

func (m *marketService) Predict(ctx context.Context, ticker string) (*models.Forecast, error) {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return nil, fmt.Errorf("%w: ticker is required", common.ErrValidation)
	}
	return m.client.Predict(ctx, ticker)
}

func (m *marketService) TechnicalSignal(ctx context.Context, ticker string) (*models.TechnicalSignal, error) {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return nil, fmt.Errorf("%w: ticker is required", common.ErrValidation)
	}
	return m.client.TechnicalSignal(ctx, ticker)
}

// MonteCarlo simulates the portfolio built from the watchlist tickers.
// An empty watchlist never reaches the network.
func (m *marketService) MonteCarlo(ctx context.Context, watchlist []models.WatchlistEntry) (*models.MonteCarloResult, error) {
	if len(watchlist) == 0 {
		return nil, common.ErrEmptyWatchlist
	}
	stocks := make([]string, 0, len(watchlist))
	for _, e := range watchlist {
		stocks = append(stocks, strings.ToUpper(e.Ticker))
	}
	return m.client.MonteCarlo(ctx, stocks)
}
