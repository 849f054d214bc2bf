package main

import (
	"fmt"

	"github.com/sandevgo/relaybot/internal/core"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", core.RelayName, core.RelayVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
