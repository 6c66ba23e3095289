package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/api"
)

// argOrPrompt returns the first command argument, or prompts for one.
func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

// Watchlist fetches and prints the user's watchlist, replacing the local
// cache wholesale.
func (a *App) Watchlist(ctx context.Context) error {
	reqCtx, cancel := a.reqCtx(ctx)
	defer cancel()

	list, err := a.watchlist.Fetch(reqCtx)
	if err != nil {
		a.flash.Set(api.UserMessage(err))
		return err
	}
	a.cached = list

	if len(list) == 0 {
		fmt.Fprintln(a.out, "Your watchlist is empty. Use 'add' to track a ticker.")
		return nil
	}
	fmt.Fprintf(a.out, "%-6s %-12s %s\n", "ID", "TICKER", "NOTES")
	for _, e := range list {
		fmt.Fprintf(a.out, "%-6d %-12s %s\n", e.ID, e.Ticker, e.Notes)
	}
	return nil
}

// Add appends a ticker to the watchlist. Duplicates against the cached
// list never reach the network.
func (a *App) Add(ctx context.Context, args []string) error {
	ticker, err := a.argOrPrompt(args, "Enter ticker to add")
	if err != nil {
		return err
	}

	reqCtx, cancel := a.reqCtx(ctx)
	defer cancel()

	entry, err := a.watchlist.Add(reqCtx, a.cached, ticker, "")
	if err != nil {
		a.flash.Set(api.UserMessage(err))
		return err
	}

	a.cached = append(a.cached, *entry)
	fmt.Fprintf(a.out, "Added %s (id %d).\n", entry.Ticker, entry.ID)
	return nil
}

// Delete removes a watchlist entry by id. The cache is updated
// optimistically and restored when the request fails.
func (a *App) Delete(ctx context.Context, args []string) error {
	raw, err := a.argOrPrompt(args, "Enter watchlist id to delete")
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Watchlist id must be a number.")
		return err
	}

	reqCtx, cancel := a.reqCtx(ctx)
	defer cancel()

	list, err := a.watchlist.Remove(reqCtx, a.cached, id)
	a.cached = list
	if err != nil {
		a.flash.Set(api.UserMessage(err))
		return err
	}

	fmt.Fprintf(a.out, "Removed entry %d.\n", id)
	return nil
}
