package engine

import (
	"reflect"
	"testing"
)

func TestNormalizeProfileNames(t *testing.T) {
	tests := []struct {
		name string
		raw  RawProfile
		want string
	}{
		{
			name: "full_name preferred",
			raw:  RawProfile{"full_name": "Jane Doe", "name": "J. Doe"},
			want: "Jane Doe",
		},
		{
			name: "name fallback",
			raw:  RawProfile{"name": "J. Doe"},
			want: "J. Doe",
		},
		{
			name: "unknown sentinel",
			raw:  RawProfile{},
			want: "Unknown",
		},
		{
			name: "non-string name ignored",
			raw:  RawProfile{"full_name": 42},
			want: "Unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeProfile(tt.raw)
			if got.FullName != tt.want {
				t.Errorf("FullName = %q, want %q", got.FullName, tt.want)
			}
		})
	}
}

func TestNormalizeProfileExperience(t *testing.T) {
	raw := RawProfile{
		"employment": []any{
			map[string]any{
				"role":      "Director Sales",
				"company":   map[string]any{"name": "Acme"},
				"starts_at": "2019-03",
				"ends_at":   "2021-06",
				"summary":   "Grew revenue by 40%",
			},
			map[string]any{"title": "", "company": ""}, // dropped
			map[string]any{"title": "Analyst"},         // company missing, kept
			"not a record",                             // ignored
		},
	}

	p := NormalizeProfile(raw)
	if len(p.ExperienceHistory) != 2 {
		t.Fatalf("got %d entries, want 2", len(p.ExperienceHistory))
	}

	first := p.ExperienceHistory[0]
	if first.Title != "Director Sales" || first.Company != "Acme" {
		t.Errorf("entry[0] = %+v", first)
	}
	if first.StartDate != "2019-03" || first.EndDate != "2021-06" {
		t.Errorf("dates = %q..%q", first.StartDate, first.EndDate)
	}
	if first.Description != "Grew revenue by 40%" {
		t.Errorf("description = %q", first.Description)
	}
	if p.ExperienceHistory[1].Title != "Analyst" {
		t.Errorf("entry[1].Title = %q", p.ExperienceHistory[1].Title)
	}
}

func TestNormalizeProfileSkills(t *testing.T) {
	tests := []struct {
		name string
		raw  RawProfile
		want []string
	}{
		{
			name: "delimited string",
			raw:  RawProfile{"skills": "Python, SQL , ,Tableau"},
			want: []string{"Python", "SQL", "Tableau"},
		},
		{
			name: "sequence with mixed types",
			raw:  RawProfile{"skills": []any{"Python", " SQL ", "", 7.0}},
			want: []string{"Python", "SQL", "7"},
		},
		{
			name: "absent",
			raw:  RawProfile{},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeProfile(tt.raw).Skills
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Skills = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeProfileEducation(t *testing.T) {
	raw := RawProfile{
		"education": []any{
			map[string]any{"school": "MIT", "degree": "BSc"},
			map[string]any{"school_name": "Stanford"},
			map[string]any{"degree": "MBA"},
			map[string]any{"gpa": "4.0"}, // yields empty, skipped
			"Community College",
		},
	}
	want := []string{"MIT", "Stanford", "MBA", "Community College"}
	got := NormalizeProfile(raw).Education
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Education = %v, want %v", got, want)
	}
}

func TestNormalizeProfileOccupation(t *testing.T) {
	t.Run("headline preferred", func(t *testing.T) {
		p := NormalizeProfile(RawProfile{
			"headline":    "VP Sales at Acme",
			"experiences": []any{map[string]any{"title": "VP Sales"}},
		})
		if p.CurrentOccupation != "VP Sales at Acme" {
			t.Errorf("CurrentOccupation = %q", p.CurrentOccupation)
		}
	})
	t.Run("most recent title fallback", func(t *testing.T) {
		p := NormalizeProfile(RawProfile{
			"experiences": []any{
				map[string]any{"title": "VP Sales", "company": "Acme"},
				map[string]any{"title": "Director", "company": "Acme"},
			},
		})
		if p.CurrentOccupation != "VP Sales" {
			t.Errorf("CurrentOccupation = %q", p.CurrentOccupation)
		}
	})
	t.Run("unknown sentinel", func(t *testing.T) {
		p := NormalizeProfile(RawProfile{})
		if p.CurrentOccupation != "Unknown" {
			t.Errorf("CurrentOccupation = %q", p.CurrentOccupation)
		}
	})
}

func TestNormalizeProfileNeverPanics(t *testing.T) {
	// Structurally valid but hostile shapes.
	inputs := []RawProfile{
		nil,
		{"experiences": "not a list"},
		{"experiences": []any{nil, 1, []any{}}},
		{"skills": map[string]any{"a": "b"}},
		{"education": []any{nil}},
		{"company": []any{"x"}},
	}
	for _, raw := range inputs {
		_ = NormalizeProfile(raw)
	}
}
