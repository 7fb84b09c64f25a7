package engine

import (
	"context"
	"reflect"
	"testing"
)

func TestParsePeerList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "clean list",
			raw:  "Globex, Initech, Umbrella",
			want: []string{"Globex", "Initech", "Umbrella"},
		},
		{
			name: "extra whitespace and empties",
			raw:  " Globex ,, Initech ,",
			want: []string{"Globex", "Initech"},
		},
		{
			name: "capped at max",
			raw:  "A, B, C, D, E",
			want: []string{"A", "B", "C"},
		},
		{
			name: "empty reply",
			raw:  "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePeerList(tt.raw, 3)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parsePeerList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNoopAdvisor(t *testing.T) {
	if peers := (noopAdvisor{}).SuggestPeers(context.Background(), "VP Sales", "Acme"); peers != nil {
		t.Errorf("noop advisor returned %v", peers)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\nGlobex, Initech\n```", "Globex, Initech"},
		{"```\nGlobex\n```", "Globex"},
		{"Globex", "Globex"},
		{"  Globex  ", "Globex"},
	}
	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
