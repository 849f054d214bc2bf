package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/relaybot/internal/config"
	"github.com/sandevgo/relaybot/internal/core"
	"github.com/sandevgo/relaybot/internal/metrics"
	"github.com/sandevgo/relaybot/internal/service/relay"
	"github.com/sandevgo/relaybot/internal/storage/memory"
	"github.com/sandevgo/relaybot/internal/storage/sqlite"
	"github.com/sandevgo/relaybot/internal/transport/telegram"
	"github.com/sandevgo/relaybot/pkg/log"
	"github.com/sandevgo/relaybot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	err := initEnv(ctx, config.GetRuntimePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration, fails fast without a valid operator id
	appCfg := config.NewAppConfig(ctx)
	relayCfg := config.NewRelayConfig(ctx)
	tgCfg := config.NewTelegramConfig(ctx)

	logger.Info().
		Int64("operator_id", relayCfg.GetOperatorID()).
		Int("history_size", relayCfg.GetHistorySize()).
		Int64("max_file_size", relayCfg.GetMaxFileSize()).
		Str("session_store", appCfg.SessionStore).
		Msg("configuration loaded")

	// 2. Storage
	sessions, cleanup, err := initStorage(ctx, appCfg, relayCfg.GetHistorySize())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	if cleanup != nil {
		services = append(services, srv.NewCleanup(cleanup))
	}

	// 3. Metrics
	registry := metrics.NewRegistry()
	relayMetrics := metrics.NewRelay(registry)
	if appCfg.IsMetricsEnabled() {
		services = append(services, metrics.NewServer(appCfg.MetricsAddr, registry))
	}

	// 4. Transport
	bot, err := telegram.NewBot(ctx, tgCfg, relayCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize telegram bot")
	}

	// 5. Relay
	router := relay.NewRouter(relayCfg, sessions, bot.Sender(), relayMetrics)
	bot.Bind(router)
	services = append(services, bot)

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig, historySize int) (core.SessionStore, func() error, error) {
	if cfg.SessionStore == config.SessionStoreMemory {
		return memory.NewSessions(historySize), nil, nil
	}

	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return sqlite.NewSessionsRepo(db, historySize), db.Close, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
