package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; real environment
// variables win over it (godotenv does not override existing vars).
//
// Variables:
//
//	YFINANCE_BACKEND_URL
//	YFINANCE_REQUEST_TIMEOUT   (seconds)
//	YFINANCE_SESSION_DB
//	YFINANCE_LOG_FILE
//	YFINANCE_DEFAULT_EXCHANGE
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.BackendServerURL = getEnvOrDefault("YFINANCE_BACKEND_URL", cfg.BackendServerURL)
	cfg.SessionDBPath = getEnvOrDefault("YFINANCE_SESSION_DB", cfg.SessionDBPath)
	cfg.LogFilePath = getEnvOrDefault("YFINANCE_LOG_FILE", cfg.LogFilePath)
	cfg.DefaultExchange = getEnvOrDefault("YFINANCE_DEFAULT_EXCHANGE", cfg.DefaultExchange)

	if val := os.Getenv("YFINANCE_REQUEST_TIMEOUT"); val != "" {
		if secs, err := strconv.Atoi(val); err == nil {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
