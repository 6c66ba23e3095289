package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		expected    Config
	}{
		{
			name: "all flags set",
			args: []string{"cmd", "-u", "http://api.example:5001", "-t", "30", "-s", "/tmp/s.db", "-e", "BO"},
			expected: Config{
				BackendServerURL: "http://api.example:5001",
				RequestTimeout:   30 * time.Second,
				SessionDBPath:    "/tmp/s.db",
				DefaultExchange:  "BO",
			},
		},
		{
			name:        "invalid timeout panics",
			args:        []string{"cmd", "-u", "http://api.example:5001", "-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected.BackendServerURL, config.BackendServerURL)
			assert.Equal(t, tt.expected.RequestTimeout, config.RequestTimeout)
			assert.Equal(t, tt.expected.SessionDBPath, config.SessionDBPath)
			assert.Equal(t, tt.expected.DefaultExchange, config.DefaultExchange)
		})
	}
}
