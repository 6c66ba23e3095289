package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/models"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name string
		in   models.Field
		want string
	}{
		{"decimal text", "3500.5", "₹3,500.50"},
		{"integer text", "1500", "₹1,500.00"},
		{"not available", models.NotAvailable, "N/A"},
		{"empty", "", "N/A"},
		{"non numeric", "n/a-ish", "n/a-ish"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatPrice(tt.in))
		})
	}
}

func TestFormatPriceFloat(t *testing.T) {
	assert.Equal(t, "₹1,520.30", formatPriceFloat(1520.3))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.00%", formatPercent(0.12))
	assert.Equal(t, "-15.00%", formatPercent(-0.15))
}

func TestFormatNewsDate(t *testing.T) {
	assert.Equal(t, "01 Jan 2024 10:00", formatNewsDate("2024-01-01 10:00:00"))
	assert.Equal(t, "yesterday", formatNewsDate("yesterday"))
}

func TestAnalysisMarkdown(t *testing.T) {
	res := &models.AnalyzeResult{
		Analysis: models.Analysis{
			Ticker:      "TCS",
			CompanyName: "Tata Consultancy Services",
			Exchange:    "NSI",
			LastPrice:   "3500.5",
			Sector:      models.NotAvailable,
		},
		NewsHeadlines: []models.NewsHeadline{
			{Title: "X", Link: "http://x", Source: "Y", PublishedAt: "2024-01-01 10:00:00"},
		},
	}

	md := analysisMarkdown(res)
	assert.Contains(t, md, "TCS - Tata Consultancy Services")
	assert.Contains(t, md, "₹3,500.50")
	assert.Contains(t, md, "| Sector | N/A |")
	assert.Contains(t, md, "**X** (Y, 01 Jan 2024 10:00)")
}
