package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/api"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/models"
)

// Analyze fetches and renders the full per-ticker analysis with news
// headlines. Works logged out too; the backend treats the bearer token as
// optional here.
func (a *App) Analyze(ctx context.Context, args []string) error {
	ticker, err := a.argOrPrompt(args, "Enter ticker to analyze")
	if err != nil {
		return err
	}

	gen := a.analyzeGen.Begin()
	reqCtx, cancel := a.reqCtx(ctx)
	defer cancel()

	res, err := a.market.Analyze(reqCtx, ticker)
	if err != nil {
		a.flash.Set(api.UserMessage(err))
		return err
	}
	if !a.analyzeGen.Current(gen) {
		return nil
	}

	fmt.Fprint(a.out, renderMarkdown(analysisMarkdown(res)))
	return nil
}

func analysisMarkdown(res *models.AnalyzeResult) string {
	an := res.Analysis

	var b strings.Builder
	fmt.Fprintf(&b, "# %s - %s (%s)\n\n", an.Ticker, an.CompanyName, an.Exchange)
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Last price | %s |\n", formatPrice(an.LastPrice))
	fmt.Fprintf(&b, "| Previous close | %s |\n", formatPrice(an.PreviousClose))
	fmt.Fprintf(&b, "| Open | %s |\n", formatPrice(an.OpenPrice))
	fmt.Fprintf(&b, "| Day range | %s - %s |\n", formatPrice(an.DayLow), formatPrice(an.DayHigh))
	fmt.Fprintf(&b, "| Volume | %s |\n", an.Volume)
	fmt.Fprintf(&b, "| Change %% | %s |\n", an.ChangePercent)
	fmt.Fprintf(&b, "| Market cap | %s |\n", an.MarketCap)
	fmt.Fprintf(&b, "| Sector | %s |\n", an.Sector)
	fmt.Fprintf(&b, "| Industry | %s |\n", an.Industry)
	fmt.Fprintf(&b, "| Employees | %s |\n", an.Employees)

	if an.Summary.Available() {
		fmt.Fprintf(&b, "\n%s\n", an.Summary)
	}

	if len(res.NewsHeadlines) > 0 {
		b.WriteString("\n## News\n\n")
		for _, n := range res.NewsHeadlines {
			fmt.Fprintf(&b, "- **%s** (%s, %s)\n  %s\n", n.Title, n.Source, formatNewsDate(n.PublishedAt), n.Link)
		}
	}
	return b.String()
}

// Predict fetches and prints the multi-horizon price forecast.
func (a *App) Predict(ctx context.Context, args []string) error {
	ticker, err := a.argOrPrompt(args, "Enter ticker to predict")
	if err != nil {
		return err
	}

	gen := a.predictGen.Begin()
	reqCtx, cancel := a.reqCtx(ctx)
	defer cancel()

	f, err := a.market.Predict(reqCtx, ticker)
	if err != nil {
		a.flash.Set(api.UserMessage(err))
		return err
	}
	if !a.predictGen.Current(gen) {
		return nil
	}

	fmt.Fprintf(a.out, "Last close (%s): %s\n", f.LastDate, formatPriceFloat(f.LastPrice))
	fmt.Fprintf(a.out, "  7-day (%s): %s\n", f.Day7.Date, formatPriceFloat(f.Day7.Price))
	fmt.Fprintf(a.out, " 14-day (%s): %s\n", f.Day14.Date, formatPriceFloat(f.Day14.Price))
	return nil
}

// MonteCarlo simulates the portfolio built from the current watchlist.
// The watchlist is fetched first when the cache is cold; an empty list
// never produces a request.
func (a *App) MonteCarlo(ctx context.Context) error {
	if a.cached == nil {
		if err := a.Watchlist(ctx); err != nil {
			return err
		}
	}
	if len(a.cached) == 0 {
		fmt.Fprintln(a.out, "Monte Carlo needs a non-empty watchlist. Use 'add' first.")
		return nil
	}

	gen := a.monteGen.Begin()
	reqCtx, cancel := a.reqCtx(ctx)
	defer cancel()

	res, err := a.market.MonteCarlo(reqCtx, a.cached)
	if err != nil {
		a.flash.Set(api.UserMessage(err))
		return err
	}
	if !a.monteGen.Current(gen) {
		return nil
	}

	fmt.Fprintf(a.out, "Portfolio: %s (equal weights)\n", strings.Join(res.Stocks, ", "))
	fmt.Fprintf(a.out, "Expected annual return: %s\n", formatPercent(res.ExpectedReturn))
	fmt.Fprintf(a.out, "Volatility:             %s\n", formatPercent(res.Volatility))
	fmt.Fprintf(a.out, "Worst 5%% outcome:       %s\n", formatPercent(res.Worst5Percent))
	fmt.Fprintln(a.out, res.Conclusion)
	return nil
}

// Signal fetches and prints the technical (RSI/OBV) reading for a ticker.
func (a *App) Signal(ctx context.Context, args []string) error {
	ticker, err := a.argOrPrompt(args, "Enter ticker")
	if err != nil {
		return err
	}

	gen := a.signalGen.Begin()
	reqCtx, cancel := a.reqCtx(ctx)
	defer cancel()

	s, err := a.market.TechnicalSignal(reqCtx, ticker)
	if err != nil {
		a.flash.Set(api.UserMessage(err))
		return err
	}
	if !a.signalGen.Current(gen) {
		return nil
	}

	fmt.Fprintf(a.out, "%s @ %s: %s - %s\n", s.Ticker, formatPriceFloat(s.CurrentPrice), s.Signal, s.SuggestedAction)
	if s.Commentary != "" {
		fmt.Fprintln(a.out, s.Commentary)
	}
	return nil
}
