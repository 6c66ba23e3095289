package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "string kept verbatim", in: `"3500.5"`, want: "3500.5"},
		{name: "number keeps raw token", in: `3500.5`, want: "3500.5"},
		{name: "integer number", in: `12500`, want: "12500"},
		{name: "null becomes sentinel", in: `null`, want: NotAvailable},
		{name: "blank string becomes sentinel", in: `"  "`, want: NotAvailable},
		{name: "sentinel passes through", in: `"N/A"`, want: NotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Field
			require.NoError(t, json.Unmarshal([]byte(tt.in), &f))
			assert.Equal(t, tt.want, f.String())
		})
	}
}

func TestField_Available(t *testing.T) {
	assert.True(t, Field("3500.5").Available())
	assert.False(t, Field("N/A").Available())
	assert.False(t, Field("").Available())
}

func TestAnalyzeResult_Unmarshal(t *testing.T) {
	payload := `{
		"analysis": {"ticker":"TCS","company_name":"Tata Consultancy Services","last_price":"3500.5","volume":1250000,"sector":null},
		"news_headlines": [{"title":"X","link":"https://example.org/x","source":"Y","published_at":"2024-01-01 10:00:00"}]
	}`

	var res AnalyzeResult
	require.NoError(t, json.Unmarshal([]byte(payload), &res))

	assert.Equal(t, "TCS", res.Analysis.Ticker.String())
	assert.Equal(t, "3500.5", res.Analysis.LastPrice.String())
	assert.Equal(t, "1250000", res.Analysis.Volume.String())
	assert.Equal(t, NotAvailable, res.Analysis.Sector.String())
	assert.Equal(t, NotAvailable, res.Analysis.MarketCap.String(), "absent fields read as sentinel")

	require.Len(t, res.NewsHeadlines, 1)
	assert.Equal(t, "X", res.NewsHeadlines[0].Title)
	assert.Equal(t, "2024-01-01 10:00:00", res.NewsHeadlines[0].PublishedAt)
}
