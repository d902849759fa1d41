// Package normalize canonicalizes raw adapter output into the unified
// posting shape: clean text, two-letter country codes, one date format.
package normalize

import (
	"strings"
	"time"

	"jobscout/internal/model"
)

// countryCodes is the fixed set of two-letter codes the sources emit.
// Anything outside it is treated as unknown, not as an error.
var countryCodes = map[string]struct{}{
	"AT": {}, "BE": {}, "BG": {}, "CA": {}, "CH": {}, "CY": {}, "CZ": {},
	"DE": {}, "DK": {}, "EE": {}, "ES": {}, "FI": {}, "FR": {}, "GB": {},
	"GR": {}, "HR": {}, "HU": {}, "IE": {}, "IT": {}, "LT": {}, "LU": {},
	"LV": {}, "MT": {}, "NL": {}, "NO": {}, "PL": {}, "PT": {}, "RO": {},
	"SE": {}, "SI": {}, "SK": {}, "UA": {}, "US": {},
}

// dateLayouts are tried in order; the first parse wins.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02 Jan 2006",
}

// CleanText replaces non-breaking spaces, collapses runs of whitespace and
// trims the result.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}

// CountryCode uppercases a raw country value and checks it against the known
// two-letter set. Unrecognized values map to empty rather than rejecting the
// record.
func CountryCode(s string) string {
	code := strings.ToUpper(CleanText(s))
	if _, ok := countryCodes[code]; !ok {
		return ""
	}
	return code
}

// Date parses a raw date string in any of the supported layouts and returns
// the canonical "2006-01-02" form, or empty when unparseable.
func Date(s string) string {
	s = CleanText(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// Posting canonicalizes every field of a raw posting. The second return is
// false when the posting has no company or title after cleaning and must be
// dropped.
func Posting(p model.JobPosting) (model.JobPosting, bool) {
	p.Company = CleanText(p.Company)
	p.Title = CleanText(p.Title)
	p.Salary = CleanText(p.Salary)
	p.City = CleanText(p.City)
	p.Country = CountryCode(p.Country)
	p.TechStack = CleanText(p.TechStack)
	p.URL = CleanText(p.URL)
	p.PostedAt = Date(p.PostedAt)

	if p.Company == "" || p.Title == "" {
		return p, false
	}
	return p, true
}
