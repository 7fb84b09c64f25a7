package engine

import (
	"sort"
	"strings"
	"time"
)

// freqCounter ranks strings by frequency, breaking ties by first-encounter
// order so repeated derivations over the same profile set are stable.
type freqCounter struct {
	counts map[string]int
	order  []string
}

func newFreqCounter() *freqCounter {
	return &freqCounter{counts: make(map[string]int)}
}

func (c *freqCounter) add(s string) {
	if _, seen := c.counts[s]; !seen {
		c.order = append(c.order, s)
	}
	c.counts[s]++
}

// top returns up to n entries sorted by descending frequency.
func (c *freqCounter) top(n int) []string {
	ranked := make([]string, len(c.order))
	copy(ranked, c.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return c.counts[ranked[i]] > c.counts[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// DeriveSuccessPattern aggregates a profile set into a single
// SuccessPattern for the given target. Profiles without a golden step still
// contribute their skills but no role, tenure, or impact data.
//
// Tenure averaging skips golden steps with unknown dates; impact averaging
// counts description-less golden steps as 0.0. The asymmetry is deliberate:
// a missing date says nothing about the stint, a missing description is a
// measured absence of quantified-impact language.
func DeriveSuccessPattern(profiles []SuccessProfile, targetRole, targetCompany string) SuccessPattern {
	return deriveSuccessPatternAt(profiles, targetRole, targetCompany, time.Now().UTC())
}

func deriveSuccessPatternAt(profiles []SuccessProfile, targetRole, targetCompany string, now time.Time) SuccessPattern {
	roles := newFreqCounter()
	skills := newFreqCounter()

	var tenures []float64
	var impacts []float64

	for _, p := range profiles {
		for _, s := range p.Skills {
			if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
				skills.add(s)
			}
		}

		golden, ok := FindGoldenStep(p, targetRole, targetCompany)
		if !ok {
			continue
		}
		roles.add(golden.Title)
		if tenure, ok := TenureYears(golden, now); ok {
			tenures = append(tenures, tenure)
		}
		impacts = append(impacts, ImpactDensity(golden.Description))
	}

	metrics.PatternsDerived.Add(1)
	return SuccessPattern{
		CommonPreviousRoles:     roles.top(5),
		TopSkillsDelta:          skills.top(20),
		AvgTenureInPreviousStep: mean(tenures),
		ImpactKeywordDensity:    mean(impacts),
	}
}

// mean returns the arithmetic mean, or 0.0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
