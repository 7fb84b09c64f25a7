package engine

// RawProfile is one untyped person record as returned by a search provider.
// Field names and shapes vary by provider and enrichment level, so mapping
// into SuccessProfile goes through NormalizeProfile.
type RawProfile = map[string]any

// ExperienceEntry is a single employment stint in a profile's history.
// Dates are ISO-like strings (YYYY, YYYY-MM or YYYY-MM-DD) and may be
// absent or malformed — consumers parse defensively.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// SuccessProfile is one person who held the target role at the target
// company. ExperienceHistory is ordered most-recent-first; golden-step
// detection depends on that ordering.
type SuccessProfile struct {
	FullName          string            `json:"full_name"`
	CurrentOccupation string            `json:"current_occupation"`
	ExperienceHistory []ExperienceEntry `json:"experience_history"`
	Skills            []string          `json:"skills"`
	Education         []string          `json:"education"`
}

// SuccessPattern is the aggregate mined from a profile set for one
// (company, role) pair. Recomputed from scratch on every load.
type SuccessPattern struct {
	CommonPreviousRoles     []string `json:"common_previous_roles"`
	TopSkillsDelta          []string `json:"top_skills_delta"`
	AvgTenureInPreviousStep float64  `json:"avg_tenure_in_previous_step"`
	ImpactKeywordDensity    float64  `json:"impact_keyword_density"`
}

// SkillGap splits missing pattern skills by category.
type SkillGap struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// GapReport compares a candidate's CV text against a SuccessPattern.
// ImpactGapRatio is exactly 1.0 when the pattern itself has zero impact
// density — "no baseline", not "perfect match".
type GapReport struct {
	MissingGoldenStepRoles []string       `json:"missing_golden_step_roles"`
	ImpactGapRatio         float64        `json:"impact_gap_ratio"`
	SkillGap               SkillGap       `json:"skill_gap"`
	PatternSnapshot        SuccessPattern `json:"success_pattern_snapshot"`
}

// CareerPatternsInput is the input for the career_patterns tool.
type CareerPatternsInput struct {
	TargetRole    string `json:"target_role"`
	TargetCompany string `json:"target_company"`
	UseMock       bool   `json:"use_mock,omitempty"`
}

// CareerPatternsOutput is the output for the career_patterns tool.
type CareerPatternsOutput struct {
	TargetRole    string           `json:"target_role"`
	TargetCompany string           `json:"target_company"`
	Profiles      []SuccessProfile `json:"profiles"`
	Pattern       SuccessPattern   `json:"pattern"`
}

// TrajectoryGapInput is the input for the trajectory_gap tool.
// When Pattern is omitted, the pattern is derived from the cached profile
// set for (target_company, target_role) — never from a live acquisition.
type TrajectoryGapInput struct {
	CVText        string          `json:"cv_text"`
	Pattern       *SuccessPattern `json:"pattern,omitempty"`
	TargetRole    string          `json:"target_role,omitempty"`
	TargetCompany string          `json:"target_company,omitempty"`
}

// PatternPeekInput is the input for the pattern_peek tool.
type PatternPeekInput struct {
	TargetRole    string `json:"target_role"`
	TargetCompany string `json:"target_company"`
}

// PatternPeekOutput reports what the cache holds for a key without
// triggering any acquisition.
type PatternPeekOutput struct {
	Cached       bool            `json:"cached"`
	ProfileCount int             `json:"profile_count"`
	Pattern      *SuccessPattern `json:"pattern,omitempty"`
}
