package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/dustin/go-humanize"
	"github.com/sandevgo/relaybot/pkg/log"
)

type RelayConfig struct {
	OperatorID  int64  `env:"RELAY_OPERATOR_ID,required,notEmpty"`
	ServiceName string `env:"RELAY_SERVICE_NAME" envDefault:"FromGood"`
	HistorySize int    `env:"RELAY_HISTORY_SIZE" envDefault:"5"`
	MaxFileSize string `env:"RELAY_MAX_FILE_SIZE" envDefault:"20MiB"`
	TimeZone    string `env:"RELAY_TIMEZONE" envDefault:"Europe/Moscow"`

	// Menu answers for the reply keyboard
	SiteURL  string `env:"RELAY_SITE_URL" envDefault:"https://fromgood.ru"`
	Contacts string `env:"RELAY_CONTACTS" envDefault:"info@fromgood.ru, +7 (495) 973-31-39"`

	maxFileSize int64
	location    *time.Location
}

func NewRelayConfig(ctx context.Context) *RelayConfig {
	c, err := ParseRelayConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Relay config")
	}
	return c
}

// ParseRelayConfig reads and validates the relay settings from the environment.
func ParseRelayConfig() (*RelayConfig, error) {
	c := &RelayConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *RelayConfig) validate() error {
	if c.OperatorID <= 0 {
		return fmt.Errorf("RELAY_OPERATOR_ID must be a positive user id, got %d", c.OperatorID)
	}
	if c.HistorySize < 1 {
		return fmt.Errorf("RELAY_HISTORY_SIZE must be at least 1, got %d", c.HistorySize)
	}

	size, err := humanize.ParseBytes(c.MaxFileSize)
	if err != nil {
		return fmt.Errorf("invalid RELAY_MAX_FILE_SIZE %q: %w", c.MaxFileSize, err)
	}
	c.maxFileSize = int64(size)

	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return fmt.Errorf("invalid RELAY_TIMEZONE %q: %w", c.TimeZone, err)
	}
	c.location = loc
	return nil
}

func (c *RelayConfig) GetOperatorID() int64 {
	return c.OperatorID
}

func (c *RelayConfig) GetServiceName() string {
	return c.ServiceName
}

func (c *RelayConfig) GetHistorySize() int {
	return c.HistorySize
}

func (c *RelayConfig) GetMaxFileSize() int64 {
	return c.maxFileSize
}

func (c *RelayConfig) GetLocation() *time.Location {
	return c.location
}

func (c *RelayConfig) GetSiteURL() string {
	return c.SiteURL
}

func (c *RelayConfig) GetContacts() string {
	return c.Contacts
}
