package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SENDER_ADDRESS", "0xsender")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.LedgerURL)
	assert.Equal(t, "http://localhost:9100", cfg.IndexerURL)
	assert.Equal(t, "0xsender", cfg.Sender)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, "INFO", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SENDER_ADDRESS", "0xsender")
	t.Setenv("LEDGER_URL", "http://ledger:9000")
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://ledger:9000", cfg.LedgerURL)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestLoadRequiresSender(t *testing.T) {
	_, err := Load()
	assert.Error(t, err)
}
