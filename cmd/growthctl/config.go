package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/growthbox-backend/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect server configuration",
}

var configEnvCmd = &cobra.Command{
	Use:   "env",
	Short: "List configuration environment variables and defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return config.WriteUsage(cmd.OutOrStdout())
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load and validate the configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "configuration ok: listening on %s, timezone %s\n", cfg.Server.Addr(), cfg.Journal.Timezone)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configEnvCmd, configCheckCmd)
}
