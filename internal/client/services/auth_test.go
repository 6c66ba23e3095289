package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/api"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/models"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/session"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/common"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/logging"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

var dbSeq atomic.Int64

func setupSession(t *testing.T) *session.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:svcdb%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return session.NewStore(db)
}

func noopLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ---- fake client ----

// fakeClient implements api.Client for the service unit tests. Each method
// records the last arguments it saw and returns the configured result.
type fakeClient struct {
	LoginToken string
	LoginUser  *models.User
	LoginErr   error

	SignupErr error

	ValidUserRet bool
	ValidUserErr error

	LogoutErr error

	AnalyzeRet *models.AnalyzeResult
	AnalyzeErr error

	PredictRet *models.Forecast
	PredictErr error

	MonteCarloRet *models.MonteCarloResult
	MonteCarloErr error

	SignalRet *models.TechnicalSignal
	SignalErr error

	HasWatchlistRet bool
	HasWatchlistErr error

	GetWatchlistRet []models.WatchlistEntry
	GetWatchlistErr error

	AddWatchlistRet *models.WatchlistEntry
	AddWatchlistErr error

	DeleteErr error

	LastLoginUser     string
	LastLoginPassword string

	LastSignupUser     string
	LastSignupEmail    string
	LastSignupPassword string
	SignupCalls        int

	LastValidUser string

	LogoutCalls int

	LastAnalyzeTicker   string
	LastAnalyzeExchange string

	LastPredictTicker string

	LastMonteCarloStocks []string
	MonteCarloCalls      int

	LastSignalTicker string

	LastHasWatchlistUserID int64
	LastGetWatchlistUserID int64

	LastAddUserID int64
	LastAddTicker string
	LastAddNotes  string
	AddCalls      int

	LastDeleteItemID int64
	DeleteCalls      int
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	f.LastLoginUser = username
	f.LastLoginPassword = password
	return f.LoginToken, f.LoginUser, f.LoginErr
}

func (f *fakeClient) Signup(ctx context.Context, username, email, password string) error {
	f.SignupCalls++
	f.LastSignupUser = username
	f.LastSignupEmail = email
	f.LastSignupPassword = password
	return f.SignupErr
}

func (f *fakeClient) ValidUser(ctx context.Context, identifier string) (bool, error) {
	f.LastValidUser = identifier
	return f.ValidUserRet, f.ValidUserErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeClient) Analyze(ctx context.Context, ticker, exchange string) (*models.AnalyzeResult, error) {
	f.LastAnalyzeTicker = ticker
	f.LastAnalyzeExchange = exchange
	return f.AnalyzeRet, f.AnalyzeErr
}

func (f *fakeClient) Predict(ctx context.Context, ticker string) (*models.Forecast, error) {
	f.LastPredictTicker = ticker
	return f.PredictRet, f.PredictErr
}

func (f *fakeClient) MonteCarlo(ctx context.Context, stocks []string) (*models.MonteCarloResult, error) {
	f.MonteCarloCalls++
	f.LastMonteCarloStocks = append([]string(nil), stocks...)
	return f.MonteCarloRet, f.MonteCarloErr
}

func (f *fakeClient) TechnicalSignal(ctx context.Context, ticker string) (*models.TechnicalSignal, error) {
	f.LastSignalTicker = ticker
	return f.SignalRet, f.SignalErr
}

func (f *fakeClient) HasWatchlist(ctx context.Context, userID int64) (bool, error) {
	f.LastHasWatchlistUserID = userID
	return f.HasWatchlistRet, f.HasWatchlistErr
}

func (f *fakeClient) GetWatchlist(ctx context.Context, userID int64) ([]models.WatchlistEntry, error) {
	f.LastGetWatchlistUserID = userID
	return f.GetWatchlistRet, f.GetWatchlistErr
}

func (f *fakeClient) AddWatchlist(ctx context.Context, userID int64, ticker, notes string) (*models.WatchlistEntry, error) {
	f.AddCalls++
	f.LastAddUserID = userID
	f.LastAddTicker = ticker
	f.LastAddNotes = notes
	return f.AddWatchlistRet, f.AddWatchlistErr
}

func (f *fakeClient) DeleteWatchlist(ctx context.Context, itemID int64) error {
	f.DeleteCalls++
	f.LastDeleteItemID = itemID
	return f.DeleteErr
}

// ---- TESTS ----

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	sess := setupSession(t)
	fc := &fakeClient{
		LoginToken: "tok123",
		LoginUser:  &models.User{ID: 7, Username: "alice", Email: "a@b.c"},
	}
	svc := NewAuthService(fc, sess, noopLogger())

	err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	assert.Equal(t, "alice", fc.LastLoginUser)
	assert.Equal(t, "secret", fc.LastLoginPassword)
	assert.True(t, sess.IsAuthenticated())
	id, ok := sess.UserID()
	require.True(t, ok)
	assert.Equal(t, int64(7), id)
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	ctx := context.Background()
	sess := setupSession(t)
	fc := &fakeClient{}
	svc := NewAuthService(fc, sess, noopLogger())

	err := svc.Login(ctx, " ", "secret")
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, fc.LastLoginUser, "no request on validation failure")
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	ctx := context.Background()
	sess := setupSession(t)
	fc := &fakeClient{LoginErr: common.ErrUnauthorized}
	svc := NewAuthService(fc, sess, noopLogger())

	err := svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.False(t, sess.IsAuthenticated())
}

func TestAuthService_Signup_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		confirm  string
		wantMsg  string
	}{
		{"missing fields", "", "a@b.c", "password1", "password1", "all fields are required"},
		{"mismatch", "alice", "a@b.c", "password1", "password2", "passwords do not match"},
		{"too short", "alice", "a@b.c", "short", "short", "at least 8 characters"},
		{"bad email", "alice", "not-an-email", "password1", "password1", "invalid email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeClient{ValidUserRet: true}
			svc := NewAuthService(fc, setupSession(t), noopLogger())

			err := svc.Signup(context.Background(), tt.username, tt.email, tt.password, tt.confirm)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Zero(t, fc.SignupCalls, "no request on validation failure")
		})
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fc := &fakeClient{ValidUserRet: true}
	svc := NewAuthService(fc, setupSession(t), noopLogger())

	err := svc.Signup(context.Background(), "alice", "a@b.c", "password1", "password1")
	require.NoError(t, err)
	assert.Equal(t, "alice", fc.LastValidUser)
	assert.Equal(t, 1, fc.SignupCalls)
	assert.Equal(t, "a@b.c", fc.LastSignupEmail)
}

func TestAuthService_Signup_UsernameTaken(t *testing.T) {
	fc := &fakeClient{ValidUserRet: false}
	svc := NewAuthService(fc, setupSession(t), noopLogger())

	err := svc.Signup(context.Background(), "alice", "a@b.c", "password1", "password1")
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Zero(t, fc.SignupCalls)
}

func TestAuthService_Signup_ProbeFailureIsNotFatal(t *testing.T) {
	fc := &fakeClient{ValidUserErr: errors.New("boom")}
	svc := NewAuthService(fc, setupSession(t), noopLogger())

	err := svc.Signup(context.Background(), "alice", "a@b.c", "password1", "password1")
	require.NoError(t, err)
	assert.Equal(t, 1, fc.SignupCalls)
}

func TestAuthService_Logout_ClearsSessionEvenWhenRemoteFails(t *testing.T) {
	ctx := context.Background()
	sess := setupSession(t)
	require.NoError(t, sess.SetAuthUser(ctx, "tok", &models.User{ID: 7, Username: "alice"}))

	fc := &fakeClient{LogoutErr: common.ErrUnavailable}
	svc := NewAuthService(fc, sess, noopLogger())

	require.NoError(t, svc.Logout(ctx))
	assert.Equal(t, 1, fc.LogoutCalls)
	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.User())
}
