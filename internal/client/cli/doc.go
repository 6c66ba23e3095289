// Package cli provides the interactive YFinanceApp terminal client.
//
// It wires configuration, the local session store, application services, and
// an interactive REPL. Typical flow: sign up or log in, search a ticker for
// a full analysis with news headlines, manage the watchlist, and run the
// prediction / Monte Carlo / technical-signal tools over it.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
