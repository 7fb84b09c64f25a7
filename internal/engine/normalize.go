package engine

import (
	"fmt"
	"strings"
)

// fieldSource extracts one candidate string value from a raw record.
// Sources are tried in order; the first non-empty result wins. This keeps
// the multi-shape field handling flat and testable instead of a tower of
// type switches.
type fieldSource func(raw map[string]any) string

// strField reads a plain string value under key.
func strField(key string) fieldSource {
	return func(raw map[string]any) string {
		s, _ := raw[key].(string)
		return strings.TrimSpace(s)
	}
}

// objField reads a string value under sub inside an object under key.
// Falls through to "" when the value under key is not an object.
func objField(key, sub string) fieldSource {
	return func(raw map[string]any) string {
		obj, ok := raw[key].(map[string]any)
		if !ok {
			return ""
		}
		s, _ := obj[sub].(string)
		return strings.TrimSpace(s)
	}
}

// firstNonEmpty applies sources in order and returns the first non-empty hit.
func firstNonEmpty(raw map[string]any, sources ...fieldSource) string {
	for _, src := range sources {
		if v := src(raw); v != "" {
			return v
		}
	}
	return ""
}

// rawList reads a list under any of the given keys, first present wins.
func rawList(raw map[string]any, keys ...string) []any {
	for _, key := range keys {
		if list, ok := raw[key].([]any); ok {
			return list
		}
	}
	return nil
}

// NormalizeProfile maps one raw provider record into a SuccessProfile.
// It never fails: missing or oddly-shaped fields degrade to empty values
// or the "Unknown" sentinel, and experience entries with neither title nor
// company are silently dropped.
func NormalizeProfile(raw RawProfile) SuccessProfile {
	if raw == nil {
		raw = RawProfile{}
	}

	fullName := firstNonEmpty(raw, strField("full_name"), strField("name"))
	if fullName == "" {
		fullName = "Unknown"
	}

	var history []ExperienceEntry
	for _, item := range rawList(raw, "experiences", "employment") {
		exp, ok := item.(map[string]any)
		if !ok {
			continue
		}
		title := firstNonEmpty(exp, strField("title"), strField("role"))
		company := firstNonEmpty(exp, objField("company", "name"), strField("company"))
		if title == "" && company == "" {
			continue
		}
		history = append(history, ExperienceEntry{
			Title:       title,
			Company:     company,
			StartDate:   firstNonEmpty(exp, strField("start_date"), strField("starts_at")),
			EndDate:     firstNonEmpty(exp, strField("end_date"), strField("ends_at")),
			Description: firstNonEmpty(exp, strField("description"), strField("summary")),
		})
	}

	occupation := firstNonEmpty(raw, strField("headline"))
	if occupation == "" && len(history) > 0 {
		occupation = history[0].Title
	}
	if occupation == "" {
		occupation = "Unknown"
	}

	metrics.ProfilesNormalized.Add(1)
	return SuccessProfile{
		FullName:          fullName,
		CurrentOccupation: occupation,
		ExperienceHistory: history,
		Skills:            normalizeSkills(raw["skills"]),
		Education:         normalizeEducation(rawList(raw, "education")),
	}
}

// normalizeSkills accepts either a comma-delimited string or a sequence of
// values; entries are stringified, trimmed, and empties dropped.
func normalizeSkills(v any) []string {
	var out []string
	switch skills := v.(type) {
	case string:
		for _, s := range strings.Split(skills, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, item := range skills {
			s := strings.TrimSpace(stringify(item))
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// normalizeEducation accepts plain strings or records; record priority is
// school, then school_name, then degree. Empty results are skipped.
func normalizeEducation(list []any) []string {
	var out []string
	for _, item := range list {
		var name string
		switch ed := item.(type) {
		case map[string]any:
			name = firstNonEmpty(ed, strField("school"), strField("school_name"), strField("degree"))
		default:
			name = strings.TrimSpace(stringify(ed))
		}
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// stringify renders a JSON-decoded scalar as a string.
func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
