// Package config loads daemon configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds cranker daemon configuration.
type Config struct {
	LedgerURL    string        `env:"LEDGER_URL" envDefault:"http://localhost:9000"`
	IndexerURL   string        `env:"INDEXER_URL" envDefault:"http://localhost:9100"`
	Sender       string        `env:"SENDER_ADDRESS,required"`
	ActionsPkg   string        `env:"ACTIONS_PACKAGE"`
	ProtocolPkg  string        `env:"PROTOCOL_PACKAGE"`
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"5s"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"INFO"`
	OTLPEndpoint string        `env:"OTLP_ENDPOINT"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
