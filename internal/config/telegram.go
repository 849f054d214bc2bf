package config

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/relaybot/pkg/log"
)

type TelegramConfig struct {
	Token      string `env:"TELEGRAM_TOKEN,required,notEmpty"`
	OperatorID int64  `env:"RELAY_OPERATOR_ID,required,notEmpty"`
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c, err := ParseTelegramConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}

func ParseTelegramConfig() (*TelegramConfig, error) {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	if c.OperatorID <= 0 {
		return nil, fmt.Errorf("RELAY_OPERATOR_ID must be a positive user id, got %d", c.OperatorID)
	}
	return c, nil
}

func (c TelegramConfig) GetTelegramToken() string {
	return c.Token
}

func (c TelegramConfig) GetOperatorID() int64 {
	return c.OperatorID
}
