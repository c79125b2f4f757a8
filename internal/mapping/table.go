package mapping

import (
	"fmt"
	"slices"

	"coco-prep/internal/coco"
)

// DefaultPlaceholder is the supercategory written when a table names none.
const DefaultPlaceholder = "none"

// Table maps source category ids onto a target taxonomy.
type Table struct {
	Version     string      `yaml:"version"`
	Name        string      `yaml:"name,omitempty"`
	Placeholder string      `yaml:"placeholder"`
	Mapping     map[int]int `yaml:"mapping"`
	Taxonomy    []string    `yaml:"taxonomy"`
}

// Lookup returns the target id for a source category id.
func (t *Table) Lookup(source int) (int, bool) {
	target, ok := t.Mapping[source]
	return target, ok
}

// TargetName returns the taxonomy name of a target id.
func (t *Table) TargetName(target int) (string, bool) {
	if target < 0 || target >= len(t.Taxonomy) {
		return "", false
	}

	return t.Taxonomy[target], true
}

// SourceIDs returns the mapped source ids in ascending order.
func (t *Table) SourceIDs() []int {
	ids := make([]int, 0, len(t.Mapping))
	for id := range t.Mapping {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}

// Categories returns one category per taxonomy position.
func (t *Table) Categories() []coco.Category {
	cats := make([]coco.Category, len(t.Taxonomy))
	for i, name := range t.Taxonomy {
		cats[i] = coco.Category{
			ID:            i,
			Name:          name,
			Supercategory: t.Placeholder,
		}
	}

	return cats
}

// Inverse returns the target -> source table.
// It fails when two source ids share a target, since the original id of
// such an annotation cannot be recovered.
func (t *Table) Inverse() (map[int]int, error) {
	inv := make(map[int]int, len(t.Mapping))

	for _, source := range t.SourceIDs() {
		target := t.Mapping[source]
		if prev, ok := inv[target]; ok {
			return nil, fmt.Errorf("target id %d is mapped from both %d and %d", target, prev, source)
		}

		inv[target] = source
	}

	return inv, nil
}
