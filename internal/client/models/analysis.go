package models

import (
	"encoding/json"
	"strings"
)

// NotAvailable is the sentinel the backend (and this client) use for fields
// with no data.
const NotAvailable = "N/A"

// Field is a loosely typed analysis value. The backend serializes numbers
// and strings interchangeably and substitutes "N/A" for missing data, so
// Field accepts either form and keeps the exact textual representation
// (a JSON number's raw token survives untouched, which matters for exact
// price parsing later).
type Field string

func (f *Field) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = NotAvailable
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			s = NotAvailable
		}
		*f = Field(s)
		return nil
	}
	*f = Field(data)
	return nil
}

// Available reports whether the field carries real data.
func (f Field) Available() bool {
	return f != "" && string(f) != NotAvailable
}

func (f Field) String() string {
	if f == "" {
		return NotAvailable
	}
	return string(f)
}

// Analysis is the per-ticker record of the analyze endpoint.
type Analysis struct {
	Ticker        Field `json:"ticker"`
	CompanyName   Field `json:"company_name"`
	Exchange      Field `json:"exchange"`
	LastPrice     Field `json:"last_price"`
	PreviousClose Field `json:"previous_close"`
	OpenPrice     Field `json:"open_price"`
	DayHigh       Field `json:"day_high"`
	DayLow        Field `json:"day_low"`
	Volume        Field `json:"volume"`
	ChangePercent Field `json:"change_percent"`
	MarketCap     Field `json:"market_cap"`
	Sector        Field `json:"sector"`
	Industry      Field `json:"industry"`
	Employees     Field `json:"employees"`
	Summary       Field `json:"summary"`
}

// NewsHeadline is one article attached to an analysis response.
type NewsHeadline struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
}

// AnalyzeResult bundles the analysis record with its news headlines.
// Both parts are replaced wholesale on every request.
type AnalyzeResult struct {
	Analysis      Analysis       `json:"analysis"`
	NewsHeadlines []NewsHeadline `json:"news_headlines"`
}
