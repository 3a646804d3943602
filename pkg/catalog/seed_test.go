package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultRecords(t *testing.T) {
	records, err := DefaultRecords()
	if err != nil {
		t.Fatalf("DefaultRecords() error = %v", err)
	}

	want := []string{"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune"}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i, name := range want {
		if records[i].ID != int64(i+1) || records[i].Name != name {
			t.Errorf("record %d = {%d %s}, want {%d %s}", i, records[i].ID, records[i].Name, i+1, name)
		}
	}
}

func TestParseRecords_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"malformed", "- id: [", "failed to parse"},
		{"zero id", "- id: 0\n  name: X", "id must be positive"},
		{"missing name", "- id: 1", "name is required"},
		{"duplicate id", "- id: 1\n  name: A\n- id: 1\n  name: B", "duplicate id 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecords([]byte(tt.input))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ParseRecords() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadRecords_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planets.json")
	data := `[{"id": 9, "name": "Pluto", "description": "Dwarf planet"}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords() error = %v", err)
	}
	if len(records) != 1 || records[0].Name != "Pluto" {
		t.Errorf("LoadRecords() = %+v", records)
	}
}
