package model

import "context"

// Source identifies the job board a posting came from.
type Source string

const (
	SourceJustJoin   Source = "JustJoin.it"
	SourceGermanTech Source = "GermanTechJobs.de"
)

// JobPosting is the unified representation of a posting from any source.
// Company and Title are guaranteed non-empty once a posting has passed
// normalization; everything else is best-effort and may be empty.
type JobPosting struct {
	Source    Source
	Company   string
	Title     string
	Salary    string // "from - to CUR" ranges, "; "-joined
	City      string
	Country   string // ISO-3166 alpha-2, empty when unknown
	Remote    string // "Yes", "No", or empty when the source does not say
	TechStack string // comma-joined skill list
	Seniority string // derived from the title, empty when no tag matched
	URL       string
	PostedAt  string // canonical "2006-01-02", empty when unknown
}

// Fetcher produces postings from one external job board.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) ([]JobPosting, error)
}

// Warning is a non-fatal per-source problem collected during a run and
// surfaced to the caller alongside the results.
type Warning struct {
	Source  string
	Message string
}
