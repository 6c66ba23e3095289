package models

// ForecastPoint is one horizon of the price prediction.
type ForecastPoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// Forecast is the multi-horizon prediction for a single ticker.
type Forecast struct {
	LastPrice float64       `json:"last_price"`
	LastDate  string        `json:"last_date"`
	Day7      ForecastPoint `json:"day_7"`
	Day14     ForecastPoint `json:"day_14"`
}

// MonteCarloResult holds the aggregate risk/return statistics computed by
// the backend over the full watchlist with equal weights.
type MonteCarloResult struct {
	Stocks         []string  `json:"stocks"`
	Weights        []float64 `json:"weights"`
	ExpectedReturn float64   `json:"expected_return"`
	Volatility     float64   `json:"volatility"`
	Worst5Percent  float64   `json:"worst_5_percent"`
	Conclusion     string    `json:"conclusion"`
}

// TechnicalSignal is the RSI/OBV bullish-bearish reading for a ticker.
type TechnicalSignal struct {
	Ticker          string  `json:"ticker"`
	CurrentPrice    float64 `json:"current_price"`
	Signal          string  `json:"signal"`
	SuggestedAction string  `json:"suggested_action"`
	Commentary      string  `json:"commentary"`
}
