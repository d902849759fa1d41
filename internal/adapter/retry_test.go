package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"jobscout/internal/model"
)

// stubFetcher returns the queued results in order, one per call.
type stubFetcher struct {
	calls   int
	results []stubResult
}

type stubResult struct {
	postings []model.JobPosting
	err      error
}

func (s *stubFetcher) Name() string { return "stub" }

func (s *stubFetcher) Fetch(ctx context.Context) ([]model.JobPosting, error) {
	r := s.results[s.calls]
	s.calls++
	return r.postings, r.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRetryFetch_SucceedsSecondAttempt(t *testing.T) {
	stub := &stubFetcher{results: []stubResult{
		{err: &model.HTTPError{StatusCode: 500, Err: model.ErrSourceUnavailable}},
		{postings: []model.JobPosting{{Company: "Acme", Title: "Data Analyst"}}},
	}}
	f := NewRetryFetcher(stub, discardLogger())
	f.backoff = time.Millisecond

	postings, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(postings) != 1 {
		t.Fatalf("expected 1 posting, got %d", len(postings))
	}
	if stub.calls != 2 {
		t.Errorf("expected 2 attempts, got %d", stub.calls)
	}
}

func TestRetryFetch_StopsAfterTwoAttempts(t *testing.T) {
	transient := &model.HTTPError{StatusCode: 503, Err: model.ErrSourceUnavailable}
	stub := &stubFetcher{results: []stubResult{
		{err: transient},
		{err: transient},
		{err: transient},
	}}
	f := NewRetryFetcher(stub, discardLogger())
	f.backoff = time.Millisecond

	_, err := f.Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if stub.calls != 2 {
		t.Errorf("expected exactly 2 attempts, got %d", stub.calls)
	}
}

func TestRetryFetch_NoRetryOnPermanentErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"client error", &model.HTTPError{StatusCode: 404, Err: model.ErrSourceUnavailable}},
		{"malformed response", fmt.Errorf("decode: %w", model.ErrMalformedResponse)},
		{"context canceled", context.Canceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubFetcher{results: []stubResult{{err: tt.err}, {}}}
			f := NewRetryFetcher(stub, discardLogger())
			f.backoff = time.Millisecond

			_, err := f.Fetch(context.Background())
			if !errors.Is(err, tt.err) {
				t.Errorf("expected original error back, got %v", err)
			}
			if stub.calls != 1 {
				t.Errorf("expected 1 attempt, got %d", stub.calls)
			}
		})
	}
}

func TestRetryFetch_RetriesNetworkErrors(t *testing.T) {
	stub := &stubFetcher{results: []stubResult{
		{err: fmt.Errorf("fetch: %w: connection refused", model.ErrSourceUnavailable)},
		{postings: nil},
	}}
	f := NewRetryFetcher(stub, discardLogger())
	f.backoff = time.Millisecond

	if _, err := f.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.calls != 2 {
		t.Errorf("expected 2 attempts, got %d", stub.calls)
	}
}
