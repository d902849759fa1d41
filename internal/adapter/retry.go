package adapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"jobscout/internal/model"
)

const (
	// Two attempts total: the original call plus one retry.
	retryMaxAttempts = 2
	retryBackoff     = 2 * time.Second
)

// RetryFetcher is a decorator that retries a transient fetch failure once
// after a fixed backoff before giving up.
type RetryFetcher struct {
	inner   model.Fetcher
	backoff time.Duration
	logger  *slog.Logger
}

// NewRetryFetcher wraps a Fetcher with the fixed retry policy.
func NewRetryFetcher(inner model.Fetcher, logger *slog.Logger) *RetryFetcher {
	return &RetryFetcher{
		inner:   inner,
		backoff: retryBackoff,
		logger:  logger,
	}
}

// Name identifies the wrapped source.
func (f *RetryFetcher) Name() string {
	return f.inner.Name()
}

// Fetch delegates to the wrapped fetcher, retrying once on transient errors.
func (f *RetryFetcher) Fetch(ctx context.Context) ([]model.JobPosting, error) {
	var lastErr error
	for attempt := 1; attempt <= retryMaxAttempts; attempt++ {
		postings, err := f.inner.Fetch(ctx)
		if err == nil {
			return postings, nil
		}
		if !isRetryable(err) {
			return nil, err
		}
		lastErr = err

		if attempt == retryMaxAttempts {
			break
		}
		f.logger.Warn("retrying after transient error",
			"source", f.inner.Name(),
			"attempt", attempt,
			"backoff", f.backoff,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.backoff):
		}
	}
	return nil, lastErr
}

// isRetryable reports whether an error represents a transient failure worth
// one more attempt. Schema mismatches and client errors are permanent.
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, model.ErrMalformedResponse) {
		return false
	}

	var httpErr *model.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == 429 || httpErr.StatusCode >= 500
	}

	// Network errors (DNS, connection reset, timeout) are transient.
	return true
}
