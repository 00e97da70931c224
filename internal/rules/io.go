package rules

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a deterministic check result map from path.
func Load(path string) (ResultMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read check results: %w", err)
	}
	var results ResultMap
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("parse check results: %w", err)
	}
	return results, nil
}

// Write marshals the result map and writes it to path. Nothing is written if
// marshalling fails.
func (m ResultMap) Write(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal check results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write check results: %w", err)
	}
	return nil
}
