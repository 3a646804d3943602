package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed planets.yaml
var defaultPlanets []byte

// DefaultRecords returns the built-in seed data for the eight planets.
func DefaultRecords() ([]Record, error) {
	return ParseRecords(defaultPlanets)
}

// LoadRecords reads seed records from a YAML or JSON file.
func LoadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %q: %w", path, err)
	}
	return ParseRecords(data)
}

// ParseRecords decodes a YAML (or JSON) list of records and checks that ids
// are positive and unique.
func ParseRecords(data []byte) ([]Record, error) {
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse seed records: %w", err)
	}

	seen := make(map[int64]bool, len(records))
	for i, rec := range records {
		if rec.ID <= 0 {
			return nil, fmt.Errorf("record %d: id must be positive, got %d", i, rec.ID)
		}
		if rec.Name == "" {
			return nil, fmt.Errorf("record %d: name is required", i)
		}
		if seen[rec.ID] {
			return nil, fmt.Errorf("record %d: duplicate id %d", i, rec.ID)
		}
		seen[rec.ID] = true
	}

	return records, nil
}
