// Package config loads runtime configuration for the YFinanceApp client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, including an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the backend HTTP API
//	-t int      request timeout (seconds)
//	-s string   local session database path
//	-e string   default exchange suffix for tickers
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "backend_server_url": "http://127.0.0.1:5001",
//	  "request_timeout": "15s",
//	  "session_db_path": "session.db",
//	  "flash_ttl": "5s",
//	  "log_file_path": "client.log",
//	  "default_exchange": "NS"
//	}
package config
