package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load parses a YAML document description.
func Load(data []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("document: parsing: %w", err)
	}
	return &d, nil
}

// LoadFile reads and parses a YAML document file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: reading %s: %w", path, err)
	}
	return Load(data)
}
