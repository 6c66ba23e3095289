package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s) ", u.Username)
	}
	return ""
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		cmds := "analyze, watchlist, add, del, predict, signal"
		if len(a.cached) > 0 {
			cmds += ", montecarlo"
		}
		fmt.Fprintln(a.out, "Available commands: "+cmds+", logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: login, signup, analyze, exit")
	}
}

// Root runs the read-eval-print loop until the user exits or stdin closes.
//
// Before every prompt it drains the expiry flag set by the transport hook
// (dropping the watchlist cache, which returns the user to the logged-out
// command set) and shows any pending flash message.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to YFinanceApp (type 'help' for commands)")

	for {
		if a.expired.Swap(false) {
			a.cached = nil
		}
		if msg := a.flash.Message(); msg != "" {
			fmt.Fprintf(a.out, "! %s\n", msg)
			a.flash.Clear()
		}

		fmt.Fprintf(a.out, "yf %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "analyze", "search":
			_ = a.Analyze(ctx, args)

		case "watchlist", "list", "l":
			if a.requireLogin() {
				_ = a.Watchlist(ctx)
			}

		case "add":
			if a.requireLogin() {
				_ = a.Add(ctx, args)
			}

		case "del", "delete":
			if a.requireLogin() {
				_ = a.Delete(ctx, args)
			}

		case "predict":
			if a.requireLogin() {
				_ = a.Predict(ctx, args)
			}

		case "montecarlo", "mc":
			if a.requireLogin() {
				_ = a.MonteCarlo(ctx)
			}

		case "signal":
			if a.requireLogin() {
				_ = a.Signal(ctx, args)
			}

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Fprintln(a.out, "Please log in first.")
	return false
}
