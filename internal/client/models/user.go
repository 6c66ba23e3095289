// Package models defines the data types exchanged with the YFinanceApp
// backend and cached by the views.
package models

// User is the identity record returned by login and persisted alongside
// the auth token.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
