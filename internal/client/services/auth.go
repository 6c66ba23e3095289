// Package services contains the application services sitting between the
// REPL views and the API client. This file defines the authentication
// service: login, signup with local validation, and logout.
package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/api"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/session"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/common"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/logging"
)

// AuthService defines the authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the backend and persist token + user
//     into the session store in one step.
//   - Signup: validate locally, then create the account on the backend.
//     No request is sent when validation fails.
//   - Logout: best-effort remote logout, then always clear the local session.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username, password string) error
	Signup(ctx context.Context, username, email, password, confirmPassword string) error
	Logout(ctx context.Context) error
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type authService struct {
	client  api.Client
	session *session.Store
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, sess *session.Store, log logging.Logger) AuthService {
	return &authService{client: client, session: sess, log: log}
}

func (a *authService) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}

	token, user, err := a.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := a.session.SetAuthUser(ctx, token, user); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	a.log.Info(ctx, "logged in", "user_id", user.ID)
	return nil
}

func (a *authService) Signup(ctx context.Context, username, email, password, confirmPassword string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" || confirmPassword == "" {
		return fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}
	if password != confirmPassword {
		return fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", common.ErrValidation)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email address", common.ErrValidation)
	}

	// Best-effort availability probe; signup itself re-checks on the server.
	available, err := a.client.ValidUser(ctx, username)
	if err == nil && !available {
		return fmt.Errorf("%w: username is already taken", common.ErrValidation)
	}

	return a.client.Signup(ctx, username, email, password)
}

// Logout asks the backend to invalidate the token but clears the local
// session regardless of the outcome.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "remote logout failed", "error", err)
	}
	return a.session.Clear(ctx)
}
