package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"jobscout/internal/config"
	"jobscout/internal/export"
	"jobscout/internal/pipeline"
)

var (
	flagCountries     []string
	flagExcludes      []string
	flagExcludeSenior bool
	flagExcludeIntern bool
	flagOutput        string
	flagNoRetry       bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch, filter and export postings once",
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&flagCountries, "country", nil, "country codes to include (repeatable, e.g. --country PL --country DE)")
	cmd.Flags().StringSliceVar(&flagExcludes, "exclude", nil, "keywords to exclude from job titles (repeatable)")
	cmd.Flags().BoolVar(&flagExcludeSenior, "exclude-senior", false, "exclude senior roles")
	cmd.Flags().BoolVar(&flagExcludeIntern, "exclude-intern", false, "exclude intern roles")
	cmd.Flags().StringVar(&flagOutput, "output", "", "output spreadsheet path (default jobs_data.xlsx)")
	cmd.Flags().BoolVar(&flagNoRetry, "no-retry", false, "disable the single retry on transient source failures")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return err
	}
	applyRunFlags(cmd, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	postings, warnings := pipeline.Collect(ctx, pipeline.Config{
		IncludeKeywords: cfg.IncludeKeywords,
		ExcludeKeywords: cfg.ExcludeKeywords,
		Countries:       cfg.Countries,
		Query:           cfg.Query,
		HTTPTimeout:     cfg.HTTPTimeout,
		Retry:           cfg.Retry,
	}, logger)

	for _, w := range warnings {
		logger.Warn("source degraded", "source", w.Source, "message", w.Message)
	}

	if err := export.WriteXLSX(postings, cfg.Output); err != nil {
		logger.Error("failed to write spreadsheet", "path", cfg.Output, "error", err)
		return err
	}

	logger.Info("saved jobs", "rows", len(postings), "path", cfg.Output)
	return nil
}

// applyRunFlags overlays explicitly set flags on the file config. The
// convenience toggles append fixed keywords to the exclude list.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("country") {
		cfg.Countries = flagCountries
	}
	if flags.Changed("exclude") {
		cfg.ExcludeKeywords = flagExcludes
	}
	if flagExcludeSenior {
		cfg.ExcludeKeywords = append(cfg.ExcludeKeywords, "senior")
	}
	if flagExcludeIntern {
		cfg.ExcludeKeywords = append(cfg.ExcludeKeywords, "intern")
	}
	if flags.Changed("output") {
		cfg.Output = flagOutput
	}
	if flagNoRetry {
		cfg.Retry = false
	}
}
