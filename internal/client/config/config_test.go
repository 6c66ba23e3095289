package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:5001", c.BackendServerURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, "session.db", c.SessionDBPath)
	assert.Equal(t, 5*time.Second, c.FlashTTL)
	assert.Equal(t, "client.log", c.LogFilePath)
	assert.Equal(t, "NS", c.DefaultExchange)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:5001", cfg.BackendServerURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "NS", cfg.DefaultExchange)
}
