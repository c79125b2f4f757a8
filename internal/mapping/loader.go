package mapping

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultTable []byte

// Default returns the built-in TiaoZhanCup -> Objects365 table.
// Each call returns a fresh copy.
func Default() (*Table, error) {
	return Parse(defaultTable)
}

// LoadFile loads and parses a YAML mapping table from the given path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Table.
func Parse(data []byte) (*Table, error) {
	var t Table

	err := yaml.Unmarshal(data, &t)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&t)

	return &t, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(t *Table) {
	if t.Version == "" {
		t.Version = "1"
	}

	if t.Placeholder == "" {
		t.Placeholder = DefaultPlaceholder
	}

	if t.Mapping == nil {
		t.Mapping = map[int]int{}
	}
}
