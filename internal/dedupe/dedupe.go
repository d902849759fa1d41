// Package dedupe removes repeated postings on a normalized (company, title)
// key. Two postings at the same company with coincidentally identical titles
// collapse into one; that false merge is an accepted trade-off of the key.
package dedupe

import (
	"strings"

	"jobscout/internal/model"
)

// Key builds the dedup key: lowercased, whitespace-collapsed company and
// title joined with a separator that cannot appear in either field.
func Key(company, title string) string {
	return normalize(company) + "\x00" + normalize(title)
}

// Postings drops duplicates, keeping the first occurrence of each key and
// preserving input order.
func Postings(in []model.JobPosting) []model.JobPosting {
	seen := make(map[string]struct{}, len(in))
	out := make([]model.JobPosting, 0, len(in))
	for _, p := range in {
		key := Key(p.Company, p.Title)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
