package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/api"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/models"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/session"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/common"
)

// WatchlistService manages the user's ticker watchlist. The caller (the
// watchlist view) owns the cached list and passes it back in, so the
// service stays stateless and the view controls exactly when its copy
// changes.
type WatchlistService interface {
	Fetch(ctx context.Context) ([]models.WatchlistEntry, error)
	Add(ctx context.Context, cached []models.WatchlistEntry, ticker, notes string) (*models.WatchlistEntry, error)
	Remove(ctx context.Context, cached []models.WatchlistEntry, itemID int64) ([]models.WatchlistEntry, error)
}

type watchlistService struct {
	client  api.Client
	session *session.Store
}

func NewWatchlistService(client api.Client, sess *session.Store) WatchlistService {
	return &watchlistService{client: client, session: sess}
}

// Fetch runs the two-step read: a cheap existence check first, then the
// full list only when records exist. The calls are strictly sequential
// because the second depends on the first's answer.
func (w *watchlistService) Fetch(ctx context.Context) ([]models.WatchlistEntry, error) {
	userID, ok := w.session.UserID()
	if !ok {
		return nil, common.ErrNoUserID
	}

	has, err := w.client.HasWatchlist(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !has {
		return []models.WatchlistEntry{}, nil
	}
	return w.client.GetWatchlist(ctx, userID)
}

// Add appends a ticker. Duplicates are rejected locally against the cached
// list, case-insensitively, before any request is sent.
func (w *watchlistService) Add(ctx context.Context, cached []models.WatchlistEntry, ticker, notes string) (*models.WatchlistEntry, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, fmt.Errorf("%w: ticker is required", common.ErrValidation)
	}

	for _, e := range cached {
		if strings.ToUpper(e.Ticker) == ticker {
			return nil, common.ErrDuplicateTicker
		}
	}

	userID, ok := w.session.UserID()
	if !ok {
		return nil, common.ErrNoUserID
	}
	return w.client.AddWatchlist(ctx, userID, ticker, notes)
}

// Remove deletes an entry optimistically: the returned list already excludes
// the entry, and when the request fails the compensating restore puts the
// exact prior list back, order included.
func (w *watchlistService) Remove(ctx context.Context, cached []models.WatchlistEntry, itemID int64) ([]models.WatchlistEntry, error) {
	remaining, restore, found := RemoveEntry(cached, itemID)
	if !found {
		return cached, common.ErrNotFound
	}

	if err := w.client.DeleteWatchlist(ctx, itemID); err != nil {
		return restore(), err
	}
	return remaining, nil
}

// RemoveEntry is the pure transition behind optimistic delete. It returns
// the list without the entry plus a compensating restore that rebuilds the
// original list exactly. The input slice is not mutated.
func RemoveEntry(list []models.WatchlistEntry, itemID int64) (remaining []models.WatchlistEntry, restore func() []models.WatchlistEntry, found bool) {
	idx := slices.IndexFunc(list, func(e models.WatchlistEntry) bool { return e.ID == itemID })
	if idx < 0 {
		return list, func() []models.WatchlistEntry { return list }, false
	}

	remaining = make([]models.WatchlistEntry, 0, len(list)-1)
	remaining = append(remaining, list[:idx]...)
	remaining = append(remaining, list[idx+1:]...)

	snapshot := slices.Clone(list)
	return remaining, func() []models.WatchlistEntry { return snapshot }, true
}
