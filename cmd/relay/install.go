package main

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/relaybot/internal/config"
	"github.com/sandevgo/relaybot/internal/service/installer"
	"github.com/sandevgo/relaybot/pkg/log"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:           "install",
	Short:         "Create the relay configuration interactively",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Setup logger
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting installation process")

		// run wizard (includes save step)
		_, err := installer.RunWizard()
		if err != nil {
			return err
		}

		// Validate the saved file the same way start does
		runtimePath := config.GetRuntimePath()
		envPath := filepath.Join(runtimePath, ".env")
		if err := godotenv.Load(envPath); err != nil {
			logger.Warn().Err(err).Str("path", envPath).Msg("failed to load .env file")
		}
		if _, err := config.ParseRelayConfig(); err != nil {
			return fmt.Errorf("saved configuration is invalid: %w", err)
		}

		logger.Info().Msgf("initialized runtime directory at: %s", runtimePath)
		logger.Info().Msg("Installation complete! You can now run 'relay start'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
