package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hiyaat04-cloud/YFinanceApp/internal/common"
)

// APIError is a structured error body the backend returned alongside a
// non-2xx status. Message is surfaced to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Unwrap lets a 401 APIError match common.ErrUnauthorized, so the verbatim
// backend message survives while auth-failure handling still triggers.
func (e *APIError) Unwrap() error {
	if e.Status == 401 {
		return common.ErrUnauthorized
	}
	return nil
}

// errorBody matches the two shapes the backend uses: auth/watchlist
// endpoints answer {"message": ...}, the analytics endpoints {"error": ...}.
type errorBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

// classifyError maps a non-2xx response body to the error taxonomy. The
// raw body was already read as text, so an HTML error page from a missing
// route degrades to common.ErrServerError instead of a JSON parse failure.
func classifyError(status int, raw []byte) error {
	var body errorBody
	msg := ""
	if err := json.Unmarshal(raw, &body); err == nil {
		msg = body.Message
		if msg == "" {
			msg = body.Err
		}
	}

	if status == 401 && msg == "" {
		return common.ErrUnauthorized
	}
	if msg == "" {
		return fmt.Errorf("%w (status %d)", common.ErrServerError, status)
	}
	return &APIError{Status: status, Message: msg}
}

// UserMessage converts any client error into the text a view should show.
func UserMessage(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, common.ErrUnauthorized):
		return "Session expired. Please log in again."
	case errors.Is(err, common.ErrServerError):
		return "Server error or route not found. Please try again later."
	case errors.Is(err, common.ErrUnavailable):
		return "Failed to connect to the server. Check your connection."
	default:
		return err.Error()
	}
}
