package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/hiyaat04-cloud/YFinanceApp/internal/flagx"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "15s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	BackendServerURL string         `json:"backend_server_url"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	SessionDBPath    string         `json:"session_db_path"`
	FlashTTL         timex.Duration `json:"flash_ttl"`
	LogFilePath      string         `json:"log_file_path"`
	DefaultExchange  string         `json:"default_exchange"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JsonConfigFlags(); when absent, nothing is loaded. Only fields
// present in the file override the current Config. Panics on read or
// unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseEnv -> parseJson -> parseFlags,
// where later stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendServerURL != "" {
		cfg.BackendServerURL = jc.BackendServerURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.FlashTTL.Duration != 0 {
		cfg.FlashTTL = time.Duration(jc.FlashTTL.Duration)
	}
	if jc.LogFilePath != "" {
		cfg.LogFilePath = jc.LogFilePath
	}
	if jc.DefaultExchange != "" {
		cfg.DefaultExchange = jc.DefaultExchange
	}
}
