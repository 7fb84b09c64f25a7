package engine

import (
	"strings"
	"time"
	"unicode"
)

// tenureLayouts are the accepted ISO-like date precisions, most specific
// first. Provider data mixes all of them freely.
var tenureLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01",
	"2006",
}

// parseStintDate parses an ISO-like date string at any supported precision.
func parseStintDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range tenureLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TenureYears estimates the stint length of exp in years as of now.
//
// A missing or unparseable start date makes the tenure unknown (ok=false).
// A missing end date means the stint is ongoing; an unparseable end date
// falls back to now rather than discarding the computation. The result is
// clamped non-negative.
func TenureYears(exp ExperienceEntry, now time.Time) (float64, bool) {
	start, ok := parseStintDate(exp.StartDate)
	if !ok {
		return 0, false
	}

	end := now
	if exp.EndDate != "" {
		if parsed, ok := parseStintDate(exp.EndDate); ok {
			end = parsed
		}
	}

	years := end.Sub(start).Hours() / 24 / 365.25
	if years < 0 {
		return 0, true
	}
	return years, true
}

// ImpactDensity is the fraction of whitespace-delimited tokens in text that
// contain a digit, '%', or '$' — a cheap proxy for quantified-impact resume
// language ("grew revenue by 40%"). Empty text scores 0. Always in [0, 1].
func ImpactDensity(text string) float64 {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return 0.0
	}
	impactful := 0
	for _, tok := range tokens {
		if hasImpactMarker(tok) {
			impactful++
		}
	}
	return float64(impactful) / float64(len(tokens))
}

func hasImpactMarker(tok string) bool {
	for _, r := range tok {
		if unicode.IsDigit(r) || r == '%' || r == '$' {
			return true
		}
	}
	return false
}
