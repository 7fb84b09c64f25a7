package engine

import "strings"

// FindGoldenStep returns the experience entry held immediately before the
// first entry matching both target role and target company, relying on the
// most-recent-first ordering of ExperienceHistory. Matching is permissive
// case-insensitive substring on both fields ("Manager" matches
// "Senior Manager").
//
// The scan stops at len-2 so a matched entry always has a chronological
// predecessor: a match at the oldest position reports no golden step.
func FindGoldenStep(p SuccessProfile, targetRole, targetCompany string) (ExperienceEntry, bool) {
	role := strings.ToLower(targetRole)
	company := strings.ToLower(targetCompany)

	exps := p.ExperienceHistory
	for i := 0; i+1 < len(exps); i++ {
		roleMatch := strings.Contains(strings.ToLower(exps[i].Title), role)
		companyMatch := strings.Contains(strings.ToLower(exps[i].Company), company)
		if roleMatch && companyMatch {
			return exps[i+1], true
		}
	}
	return ExperienceEntry{}, false
}
