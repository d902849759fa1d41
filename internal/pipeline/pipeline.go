// Package pipeline owns one full run: fetch from every source, normalize,
// filter, dedupe. It is a pure function of its Config; nothing survives
// between runs.
package pipeline

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"jobscout/internal/adapter"
	"jobscout/internal/dedupe"
	"jobscout/internal/filter"
	"jobscout/internal/model"
	"jobscout/internal/normalize"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	defaultQuery       = "Data Analyst"
)

// Config is one run's immutable configuration, assembled by the CLI or the
// interactive UI and passed in by value.
type Config struct {
	IncludeKeywords []string
	ExcludeKeywords []string
	Countries       []string
	Query           string // search term for the HTML source
	HTTPTimeout     time.Duration
	Retry           bool // one extra attempt per source on transient failure
}

func (c Config) withDefaults() Config {
	if c.IncludeKeywords == nil {
		c.IncludeKeywords = filter.DefaultIncludeKeywords
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = defaultHTTPTimeout
	}
	if c.Query == "" {
		c.Query = defaultQuery
	}
	return c
}

// Collect builds the source adapters and runs the full pipeline. Source
// failures degrade to warnings; the returned slice holds whatever the
// healthy sources produced.
func Collect(ctx context.Context, cfg Config, logger *slog.Logger) ([]model.JobPosting, []model.Warning) {
	cfg = cfg.withDefaults()
	client := &http.Client{Timeout: cfg.HTTPTimeout}

	fetchers := []model.Fetcher{
		adapter.NewJustJoinAdapter(client),
		adapter.NewGermanTechAdapter(cfg.Query, client),
	}
	if cfg.Retry {
		for i, f := range fetchers {
			fetchers[i] = adapter.NewRetryFetcher(f, logger)
		}
	}

	return Run(ctx, fetchers, cfg, logger)
}

// Run executes the pipeline over the given fetchers. Sources are fetched
// concurrently as a pure optimization: each result lands in its own slot and
// the slots are concatenated in fetcher order, so output ordering matches a
// sequential run.
func Run(ctx context.Context, fetchers []model.Fetcher, cfg Config, logger *slog.Logger) ([]model.JobPosting, []model.Warning) {
	cfg = cfg.withDefaults()

	results := make([][]model.JobPosting, len(fetchers))
	failures := make([]error, len(fetchers))

	var g errgroup.Group
	for i, f := range fetchers {
		g.Go(func() error {
			postings, err := f.Fetch(ctx)
			if err != nil {
				failures[i] = err
				return nil
			}
			results[i] = postings
			return nil
		})
	}
	g.Wait()

	var warnings []model.Warning
	var raw []model.JobPosting
	for i, f := range fetchers {
		if failures[i] != nil {
			logger.Warn("source failed, continuing without it",
				"source", f.Name(), "error", failures[i])
			warnings = append(warnings, model.Warning{
				Source:  f.Name(),
				Message: failures[i].Error(),
			})
			continue
		}
		raw = append(raw, results[i]...)
	}

	normalized := make([]model.JobPosting, 0, len(raw))
	dropped := 0
	for _, p := range raw {
		np, ok := normalize.Posting(p)
		if !ok {
			dropped++
			continue
		}
		normalized = append(normalized, np)
	}

	filtered := filter.Apply(normalized, filter.Keywords{
		Include:   cfg.IncludeKeywords,
		Exclude:   cfg.ExcludeKeywords,
		Countries: cfg.Countries,
	})
	unique := dedupe.Postings(filtered)

	logger.Info("pipeline complete",
		"fetched", len(raw),
		"dropped", dropped,
		"matched", len(filtered),
		"unique", len(unique),
		"warnings", len(warnings),
	)

	return unique, warnings
}
