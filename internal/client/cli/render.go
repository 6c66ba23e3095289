package cli

import (
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/shopspring/decimal"

	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/models"
)

const newsTimeLayout = "2006-01-02 15:04:05"

// formatPrice renders a backend price value as Indian rupees, e.g.
// "₹3,500.50". The raw text is parsed exactly as a decimal so "3500.5"
// never picks up float noise. Non-numeric values come back unchanged.
func formatPrice(f models.Field) string {
	if !f.Available() {
		return models.NotAvailable
	}
	d, err := decimal.NewFromString(string(f))
	if err != nil {
		return f.String()
	}
	return displayINR(d)
}

// formatPriceFloat is formatPrice for endpoints that return real numbers.
func formatPriceFloat(v float64) string {
	return displayINR(decimal.NewFromFloat(v))
}

func displayINR(d decimal.Decimal) string {
	cur := money.GetCurrency(money.INR)
	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	minor := d.Mul(factor).Round(0).IntPart()
	return money.New(minor, money.INR).Display()
}

// formatPercent renders a backend fraction (0.12) as "12.00%".
func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

// formatNewsDate reformats a backend timestamp to a compact readable form.
// Unparseable values pass through unchanged.
func formatNewsDate(s string) string {
	t, err := time.Parse(newsTimeLayout, s)
	if err != nil {
		return s
	}
	return t.Format("02 Jan 2006 15:04")
}

// renderMarkdown pretty-prints a markdown document for the terminal.
// On any renderer failure the raw markdown is shown instead.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
