// Package common defines shared constants and sentinel errors used across
// the YFinanceApp client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// The backend answered, but with something other than JSON
	// (typically an HTML error page from a missing route).
	ErrServerError = errors.New("route not found / server error")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")

	// Validation / precondition errors raised before any network call.
	ErrValidation      = errors.New("validation error")
	ErrNoUserID        = errors.New("no user id")
	ErrDuplicateTicker = errors.New("ticker already in watchlist")
	ErrEmptyWatchlist  = errors.New("watchlist is empty")
	ErrNotFound        = errors.New("not found")
)
