package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/courtdata/statline/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "statline",
	Short: "Player performance scoring and ranking pipeline",
	Long:  "Reads tabular player statistics (CSV or XLSX), computes weighted performance scores, ranks and tiers players per batch, and exports ranked results with summary aggregates.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := cfg.Validate(); err != nil {
			return err
		}

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
