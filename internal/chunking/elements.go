package chunking

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadElements reads a partitioned-elements JSON array from path.
func LoadElements(path string) ([]Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read elements: %w", err)
	}
	var elements []Element
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("parse elements: %w", err)
	}
	return elements, nil
}

// LoadChildren reads a child-chunk JSON array from path.
func LoadChildren(path string) ([]Child, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read child chunks: %w", err)
	}
	var children []Child
	if err := json.Unmarshal(data, &children); err != nil {
		return nil, fmt.Errorf("parse child chunks: %w", err)
	}
	return children, nil
}

// WriteParents marshals parent chunks and writes them to path. The file is
// only written after marshalling succeeds.
func WriteParents(parents []Parent, path string) error {
	if parents == nil {
		parents = []Parent{}
	}
	return writeJSON(parents, path, "parent chunks")
}

// WriteChildren marshals child chunks and writes them to path.
func WriteChildren(children []Child, path string) error {
	if children == nil {
		children = []Child{}
	}
	return writeJSON(children, path, "child chunks")
}

func writeJSON(value any, path, label string) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", label, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", label, err)
	}
	return nil
}
