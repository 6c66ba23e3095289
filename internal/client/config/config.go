package config

import "time"

// Config holds runtime settings for the YFinanceApp terminal client.
//
// Fields:
//   - BackendServerURL: base URL of the backend HTTP API.
//   - RequestTimeout: per-request deadline for API calls.
//   - SessionDBPath: path of the local sqlite file holding session state.
//   - FlashTTL: how long a flash message stays on screen before auto-clear.
//   - LogFilePath: rotated JSON log file (the REPL owns stdout).
//   - DefaultExchange: exchange suffix appended to tickers (e.g. "NS").
type Config struct {
	BackendServerURL string
	RequestTimeout   time.Duration
	SessionDBPath    string
	FlashTTL         time.Duration
	LogFilePath      string
	DefaultExchange  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendServerURL = "http://127.0.0.1:5001"
	c.RequestTimeout = 15 * time.Second
	c.SessionDBPath = "session.db"
	c.FlashTTL = 5 * time.Second
	c.LogFilePath = "client.log"
	c.DefaultExchange = "NS"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including an optional .env file), a JSON file
// (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
