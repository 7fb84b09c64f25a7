package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadMockProfiles loads a pre-normalized profile set from a JSON file, a
// drop-in replacement for the live provider in test/demo mode. A missing
// or unreadable file is a hard error, unlike per-field data problems.
func LoadMockProfiles(path string) ([]SuccessProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mock profiles: read %s: %w", path, err)
	}
	var profiles []SuccessProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("mock profiles: decode %s: %w", path, err)
	}
	return profiles, nil
}
