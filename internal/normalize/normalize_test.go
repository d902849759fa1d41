package normalize

import (
	"testing"

	"jobscout/internal/model"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims and collapses", "  Data   Analyst \t", "Data Analyst"},
		{"non-breaking spaces", "Data Analyst", "Data Analyst"},
		{"newlines", "Acme\nGmbH", "Acme GmbH"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.input); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCountryCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"pl", "PL"},
		{" de ", "DE"},
		{"CH", "CH"},
		{"XX", ""},
		{"Germany", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CountryCode(tt.input); got != tt.want {
			t.Errorf("CountryCode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2026-02-10T09:00:00Z", "2026-02-10"},
		{"2026-02-10T09:00:00.123Z", "2026-02-10"},
		{"2026-02-10 09:00:00", "2026-02-10"},
		{"2026-02-10", "2026-02-10"},
		{"10 Feb 2026", "2026-02-10"},
		{"yesterday", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Date(tt.input); got != tt.want {
			t.Errorf("Date(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPosting(t *testing.T) {
	p, ok := Posting(model.JobPosting{
		Company:  "  Acme  GmbH ",
		Title:    " Data Analyst ",
		Country:  "de",
		PostedAt: "2026-02-10T09:00:00Z",
	})
	if !ok {
		t.Fatal("expected posting to be kept")
	}
	if p.Company != "Acme GmbH" || p.Title != "Data Analyst" {
		t.Errorf("unexpected company/title: %q / %q", p.Company, p.Title)
	}
	if p.Country != "DE" {
		t.Errorf("expected country DE, got %q", p.Country)
	}
	if p.PostedAt != "2026-02-10" {
		t.Errorf("expected posted 2026-02-10, got %q", p.PostedAt)
	}
}

func TestPosting_DropsEmptyCompanyOrTitle(t *testing.T) {
	tests := []struct {
		name    string
		posting model.JobPosting
	}{
		{"no company", model.JobPosting{Title: "Data Analyst"}},
		{"no title", model.JobPosting{Company: "Acme"}},
		{"whitespace only", model.JobPosting{Company: "  ", Title: "\t"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Posting(tt.posting); ok {
				t.Error("expected posting to be dropped")
			}
		})
	}
}
