package cli

import (
	"context"
	"fmt"

	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the session
// store holds the token and user and the prompt switches to the logged-in
// command set.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	reqCtx, cancel := a.reqCtx(ctx)
	defer cancel()
	if err := a.auth.Login(reqCtx, username, password); err != nil {
		a.flash.Set(api.UserMessage(err))
		return err
	}

	a.cached = nil
	fmt.Fprintf(a.out, "Welcome back, %s!\n", a.session.User().Username)
	return nil
}

// Signup prompts for the registration form and creates an account. On
// success the user is told to log in; nothing is stored locally.
func (a *App) Signup(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Choose a password (min 8 chars)", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	reqCtx, cancel := a.reqCtx(ctx)
	defer cancel()
	if err := a.auth.Signup(reqCtx, username, email, password, confirm); err != nil {
		a.flash.Set(api.UserMessage(err))
		return err
	}

	a.flash.Set("Account created. Please log in.")
	return nil
}

// Logout ends the session. The remote call is best effort; the local
// session is always cleared.
func (a *App) Logout(ctx context.Context) error {
	reqCtx, cancel := a.reqCtx(ctx)
	defer cancel()
	if err := a.auth.Logout(reqCtx); err != nil {
		a.flash.Set(api.UserMessage(err))
		return err
	}

	a.cached = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
