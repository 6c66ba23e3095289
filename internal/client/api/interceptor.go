package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/hiyaat04-cloud/YFinanceApp/internal/common"
)

// TokenSource yields the current bearer token; empty means logged out.
// *session.Store satisfies it.
type TokenSource interface {
	Token() string
}

// AuthTransport is the cross-cutting interceptor attached once to the
// shared http.Client. On the way out it injects the bearer token (when one
// exists) and a correlation id; on the way back it fires OnAuthFailure for
// any 401 carried by an authenticated request, then hands the response to
// the caller unchanged so view-local error handling still runs.
type AuthTransport struct {
	Base   http.RoundTripper
	Tokens TokenSource

	// OnAuthFailure implements the session-expiry policy (flash, clear
	// session, navigate to login). It only fires when a token was attached:
	// a 401 on a tokenless request is a credentials failure, not an
	// expired session.
	OnAuthFailure func()
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	// Per RoundTripper contract the original request is not mutated.
	req = req.Clone(req.Context())

	token := ""
	if t.Tokens != nil {
		token = t.Tokens.Token()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if req.Header.Get(common.RequestIDHeaderName) == "" {
		req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && token != "" && t.OnAuthFailure != nil {
		t.OnAuthFailure()
	}

	return resp, nil
}
