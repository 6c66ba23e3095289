package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/models"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/common"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/logging"
)

// HTTPClient implements Client against the backend's /api/v1 routes.
// The shared *http.Client should carry an AuthTransport so every call gets
// the bearer token and the expiry policy without per-call wiring.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the backend at baseURL. A nil
// httpClient falls back to http.DefaultClient.
func NewHTTPClient(baseURL string, httpClient *http.Client, log logging.Logger) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log,
	}
}

// do issues one request and decodes the response into out (when non-nil).
// The body is always read fully as text first, so non-JSON error pages are
// classified instead of blowing up the decoder.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, headers map[string]string, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	c.log.Debug(ctx, "request done", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classifyError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: unexpected response body", common.ErrServerError)
	}
	return nil
}

type loginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	body := map[string]string{"username": username, "password": password}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/login", nil, nil, body, &resp); err != nil {
		return "", nil, err
	}
	if resp.Token == "" || resp.User == nil {
		return "", nil, fmt.Errorf("%w: login response missing token or user", common.ErrServerError)
	}
	return resp.Token, resp.User, nil
}

func (c *HTTPClient) Signup(ctx context.Context, username, email, password string) error {
	body := map[string]string{"username": username, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/v1/signup", nil, nil, body, nil)
}

// ValidUser reports whether the identifier (username or email) is still
// available. The backend answers 409 when it is taken.
func (c *HTTPClient) ValidUser(ctx context.Context, identifier string) (bool, error) {
	body := map[string]string{"username": identifier}
	err := c.do(ctx, http.MethodPost, "/api/v1/valid_user", nil, nil, body, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/v1/logout", nil, nil, nil, nil)
}

func (c *HTTPClient) Analyze(ctx context.Context, ticker, exchange string) (*models.AnalyzeResult, error) {
	query := url.Values{}
	query.Set("ticker", strings.ToUpper(ticker))
	query.Set("exchange", strings.ToUpper(exchange))

	var res models.AnalyzeResult
	if err := c.do(ctx, http.MethodGet, "/api/v1/analyze", query, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Predict(ctx context.Context, ticker string) (*models.Forecast, error) {
	query := url.Values{}
	query.Set("stock", strings.ToUpper(ticker))

	var res models.Forecast
	if err := c.do(ctx, http.MethodGet, "/api/v1/predict", query, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) MonteCarlo(ctx context.Context, stocks []string) (*models.MonteCarloResult, error) {
	body := map[string][]string{"stocks": stocks}

	var res models.MonteCarloResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/montecarlo", nil, nil, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) TechnicalSignal(ctx context.Context, ticker string) (*models.TechnicalSignal, error) {
	query := url.Values{}
	query.Set("stock", strings.ToUpper(ticker))

	var res models.TechnicalSignal
	if err := c.do(ctx, http.MethodGet, "/api/v1/technical_signal", query, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

type hasWatchlistResponse struct {
	UserID     int64 `json:"user_id"`
	HasRecords bool  `json:"has_watchlist_records"`
}

func (c *HTTPClient) HasWatchlist(ctx context.Context, userID int64) (bool, error) {
	var resp hasWatchlistResponse
	path := fmt.Sprintf("/api/v1/has_watchlist/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, nil, &resp); err != nil {
		return false, err
	}
	return resp.HasRecords, nil
}

type watchlistResponse struct {
	UserID    int64                   `json:"user_id"`
	Count     int                     `json:"count"`
	Watchlist []models.WatchlistEntry `json:"watchlist"`
}

func (c *HTTPClient) GetWatchlist(ctx context.Context, userID int64) ([]models.WatchlistEntry, error) {
	var resp watchlistResponse
	path := fmt.Sprintf("/api/v1/watchlist/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Watchlist, nil
}

type addWatchlistResponse struct {
	Message string                 `json:"message"`
	Item    *models.WatchlistEntry `json:"watchlist_item"`
}

func (c *HTTPClient) AddWatchlist(ctx context.Context, userID int64, ticker, notes string) (*models.WatchlistEntry, error) {
	body := map[string]string{"ticker": strings.ToUpper(ticker), "notes": notes}
	headers := map[string]string{common.UserIDHeaderName: fmt.Sprintf("%d", userID)}

	var resp addWatchlistResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/watchlist/add", nil, headers, body, &resp); err != nil {
		return nil, err
	}
	if resp.Item == nil {
		return nil, fmt.Errorf("%w: add response missing watchlist item", common.ErrServerError)
	}
	return resp.Item, nil
}

func (c *HTTPClient) DeleteWatchlist(ctx context.Context, itemID int64) error {
	path := fmt.Sprintf("/api/v1/watchlist/%d", itemID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, nil)
}
