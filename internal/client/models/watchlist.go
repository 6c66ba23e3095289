package models

// WatchlistEntry is one row of a user's watchlist. The id is issued by the
// backend; the client never assigns it.
type WatchlistEntry struct {
	ID     int64  `json:"id"`
	Ticker string `json:"ticker"`
	Notes  string `json:"notes"`
}
