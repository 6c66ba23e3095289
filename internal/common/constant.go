// Package common contains shared constants and sentinel errors used across
// YFinanceApp client components.
package common

const (
	// UserIDHeaderName is the raw header the backend reads on watchlist
	// write operations that it authorizes by user rather than by token.
	UserIDHeaderName = "user-id"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-Id"
)
