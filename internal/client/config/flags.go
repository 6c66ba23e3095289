package config

import (
	"flag"
	"os"
	"time"

	"github.com/hiyaat04-cloud/YFinanceApp/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-u string   base URL of the backend server (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-s string   path of the local session database
//	-e string   default exchange suffix for tickers
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-t", "-s", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendServerURL, "u", cfg.BackendServerURL, "base URL of the backend server")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionDBPath, "s", cfg.SessionDBPath, "path of the local session database")
	fs.StringVar(&cfg.DefaultExchange, "e", cfg.DefaultExchange, "default exchange suffix for tickers")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
