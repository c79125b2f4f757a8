package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"coco-prep/internal/coco"
)

// ClassTable maps YOLO class ids to class names.
type ClassTable map[int]string

// LoadClassTable loads a class table such as {"0": "drone", "1": "car"}.
func LoadClassTable(path string) (ClassTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &coco.MissingFileError{Path: path, Err: err}
		}

		return nil, fmt.Errorf("failed to read class file %s: %w", path, err)
	}

	classes, err := ParseClassTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return classes, nil
}

// ParseClassTable parses a JSON object keyed by integer class id.
func ParseClassTable(data []byte) (ClassTable, error) {
	var classes ClassTable

	if err := json.Unmarshal(data, &classes); err != nil {
		return nil, fmt.Errorf("failed to parse class table: %w", err)
	}

	if classes == nil {
		classes = ClassTable{}
	}

	return classes, nil
}

// IDs returns the class ids in ascending order.
func (c ClassTable) IDs() []int {
	ids := make([]int, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}

// Categories returns one category per class, ordered by id, using the class
// name as its own supercategory.
func (c ClassTable) Categories() []coco.Category {
	cats := make([]coco.Category, 0, len(c))
	for _, id := range c.IDs() {
		cats = append(cats, coco.Category{
			ID:            id,
			Name:          c[id],
			Supercategory: c[id],
		})
	}

	return cats
}
