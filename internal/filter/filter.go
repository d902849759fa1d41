// Package filter applies the keyword and country predicates and enriches
// surviving postings with a seniority tag.
package filter

import (
	"strings"

	"jobscout/internal/model"
)

// DefaultIncludeKeywords admit analyst-family roles.
var DefaultIncludeKeywords = []string{
	"data analyst",
	"data scientist",
	"business analyst",
	"bi developer",
	"analytics engineer",
}

// DefaultExcludeKeywords are always rejected unless overridden.
var DefaultExcludeKeywords = []string{
	"manager",
}

// seniorityTags are checked against the title in order; the first hit wins.
var seniorityTags = []string{"intern", "junior", "senior", "lead", "principal", "staff"}

// Keywords holds one run's filter criteria. Matching is case-insensitive
// substring containment on whitespace-normalized text; empty lists pass all.
type Keywords struct {
	Include   []string
	Exclude   []string
	Countries []string
}

// Match reports whether a posting passes the include, exclude and country
// predicates.
func (k Keywords) Match(p model.JobPosting) bool {
	title := normalizedText(p.Title)

	if len(k.Include) > 0 {
		matched := false
		for _, kw := range k.Include {
			if strings.Contains(title, normalizedText(kw)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, kw := range k.Exclude {
		kw = normalizedText(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(title, kw) {
			return false
		}
	}

	if len(k.Countries) > 0 {
		matched := false
		for _, c := range k.Countries {
			if strings.EqualFold(strings.TrimSpace(c), p.Country) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// Apply filters the postings in order and tags each survivor's seniority.
func Apply(postings []model.JobPosting, k Keywords) []model.JobPosting {
	kept := make([]model.JobPosting, 0, len(postings))
	for _, p := range postings {
		if !k.Match(p) {
			continue
		}
		p.Seniority = SeniorityTag(p.Title)
		kept = append(kept, p)
	}
	return kept
}

// SeniorityTag derives a seniority label from the title, or empty when no
// known tag appears.
func SeniorityTag(title string) string {
	t := normalizedText(title)
	for _, tag := range seniorityTags {
		if strings.Contains(t, tag) {
			return tag
		}
	}
	return ""
}

func normalizedText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
