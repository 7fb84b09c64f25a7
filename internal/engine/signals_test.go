package engine

import (
	"math"
	"testing"
	"time"
)

var signalNow = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

func TestTenureYears(t *testing.T) {
	tests := []struct {
		name   string
		exp    ExperienceEntry
		want   float64
		wantOK bool
	}{
		{
			name:   "two full years",
			exp:    ExperienceEntry{StartDate: "2019-01-01", EndDate: "2021-01-01"},
			want:   2.0,
			wantOK: true,
		},
		{
			name:   "year-month precision",
			exp:    ExperienceEntry{StartDate: "2019-03", EndDate: "2021-03"},
			want:   2.0,
			wantOK: true,
		},
		{
			name:   "missing start is unknown",
			exp:    ExperienceEntry{EndDate: "2021-01-01"},
			wantOK: false,
		},
		{
			name:   "malformed start is unknown",
			exp:    ExperienceEntry{StartDate: "March 2019", EndDate: "2021-01-01"},
			wantOK: false,
		},
		{
			name:   "missing end uses now",
			exp:    ExperienceEntry{StartDate: "2025-08-01"},
			want:   1.0,
			wantOK: true,
		},
		{
			name:   "malformed end falls back to now",
			exp:    ExperienceEntry{StartDate: "2025-08-01", EndDate: "present"},
			want:   1.0,
			wantOK: true,
		},
		{
			name:   "end before start clamps to zero",
			exp:    ExperienceEntry{StartDate: "2021-01-01", EndDate: "2019-01-01"},
			want:   0.0,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TenureYears(tt.exp, signalNow)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("tenure = %.3f, want ~%.3f", got, tt.want)
			}
			if got < 0 {
				t.Errorf("tenure %.3f is negative", got)
			}
		})
	}
}

func TestTenureYearsMonotonic(t *testing.T) {
	// Ongoing stint: tenure must grow with elapsed time.
	exp := ExperienceEntry{StartDate: "2020-01-01"}
	early, ok1 := TenureYears(exp, signalNow)
	late, ok2 := TenureYears(exp, signalNow.AddDate(1, 0, 0))
	if !ok1 || !ok2 {
		t.Fatal("expected tenure to be known")
	}
	if late <= early {
		t.Errorf("tenure not monotonic: %.3f then %.3f", early, late)
	}
}

func TestImpactDensity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"empty", "", 0.0},
		{"whitespace only", "   \n\t ", 0.0},
		{"no impact tokens", "led the regional sales team", 0.0},
		{"percent token", "grew revenue by 40%", 0.25},
		{"dollar and digits", "$2M pipeline across 3 regions", 0.4},
		{"all impactful", "40% $1M 2019", 1.0},
		{"newlines split tokens", "grew\nrevenue\nby\n40%", 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ImpactDensity(tt.text)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ImpactDensity(%q) = %v, want %v", tt.text, got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("density %v out of [0,1]", got)
			}
		})
	}
}
