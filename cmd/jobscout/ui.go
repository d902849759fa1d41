package main

import (
	"github.com/spf13/cobra"

	"jobscout/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Interactive terminal UI",
	Long:  "Opens a form for countries and exclude keywords, runs the pipeline on demand, and saves results to a spreadsheet.",
	RunE:  runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return err
	}

	if err := tui.Run(cfg, logger); err != nil {
		logger.Error("ui failed", "error", err)
		return err
	}
	return nil
}
