package engine

import "strings"

// GapVocab holds the classification vocabularies for skill-gap reports.
// Injected via Config so the classification policy is swappable without
// touching the analysis itself.
type GapVocab struct {
	Technical []string
	Soft      []string
}

// DefaultGapVocab returns the built-in classification vocabularies.
func DefaultGapVocab() GapVocab {
	return GapVocab{
		Technical: []string{
			"python", "r", "sql", "excel", "power bi", "tableau",
			"javascript", "react", "java", "c++", "c#",
			"aws", "azure", "gcp", "spark", "hadoop",
		},
		Soft: []string{
			"leadership", "communication", "teamwork",
			"stakeholder management", "problem solving",
			"analytical thinking", "collaboration", "presentation",
			"mentoring", "client management",
		},
	}
}

const skillGapCap = 5

// AnalyzeTrajectoryGap compares candidate CV text against a mined pattern.
// Pure and side-effect-free; it never triggers acquisition.
func AnalyzeTrajectoryGap(cvText string, pattern SuccessPattern) GapReport {
	vocab := cfg.Vocab
	if len(vocab.Technical) == 0 && len(vocab.Soft) == 0 {
		vocab = DefaultGapVocab()
	}
	return analyzeGap(cvText, pattern, vocab)
}

func analyzeGap(cvText string, pattern SuccessPattern, vocab GapVocab) GapReport {
	textLower := strings.ToLower(cvText)

	missingRoles := []string{}
	for _, role := range pattern.CommonPreviousRoles {
		if !strings.Contains(textLower, strings.ToLower(role)) {
			missingRoles = append(missingRoles, role)
		}
	}

	// 1.0 sentinel when the pattern has no baseline, not a real ratio.
	impactRatio := 1.0
	if pattern.ImpactKeywordDensity > 0 {
		impactRatio = ImpactDensity(cvText) / pattern.ImpactKeywordDensity
	}

	var technical, soft, unclassified []string
	for _, skill := range pattern.TopSkillsDelta {
		skill = strings.ToLower(skill)
		if skill == "" || strings.Contains(textLower, skill) {
			continue
		}
		switch {
		case containsAny(skill, vocab.Technical):
			technical = append(technical, skill)
		case containsAny(skill, vocab.Soft):
			soft = append(soft, skill)
		default:
			unclassified = append(unclassified, skill)
		}
	}

	// Never report an empty technical bucket purely because the vocabulary
	// missed: backfill from the unclassified remainder.
	if len(technical) == 0 {
		technical = unclassified
	}

	return GapReport{
		MissingGoldenStepRoles: missingRoles,
		ImpactGapRatio:         impactRatio,
		SkillGap: SkillGap{
			Technical: capList(technical, skillGapCap),
			Soft:      capList(soft, skillGapCap),
		},
		PatternSnapshot: pattern,
	}
}

// containsAny reports whether s contains any of the keywords as a
// substring. Note the vocabulary includes the single-letter language "r",
// so any skill containing that letter classifies as technical; the
// classification is this permissive on purpose.
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func capList(list []string, n int) []string {
	if list == nil {
		return []string{}
	}
	if len(list) > n {
		return list[:n]
	}
	return list
}
