package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/relaybot/pkg/log"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreSQLite = "sqlite"
)

type AppConfig struct {
	RuntimePath string

	// Session persistence: memory | sqlite
	SessionStore string `env:"RELAY_SESSION_STORE" envDefault:"sqlite"`

	// Metrics listen address, empty disables the endpoint
	MetricsAddr string `env:"RELAY_METRICS_ADDR"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := ParseAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{RuntimePath: GetRuntimePath()}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	if c.SessionStore != SessionStoreMemory && c.SessionStore != SessionStoreSQLite {
		return nil, fmt.Errorf("unknown RELAY_SESSION_STORE %q", c.SessionStore)
	}
	return c, nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "relaybot.db")
}

func (c AppConfig) IsMetricsEnabled() bool {
	return c.MetricsAddr != ""
}
