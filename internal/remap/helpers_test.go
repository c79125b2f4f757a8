package remap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"coco-prep/internal/coco"
	"coco-prep/internal/mapping"
)

// recorder is a Reporter that keeps every message.
type recorder struct {
	infos    []string
	warnings []string
	errors   []string
}

func (r *recorder) Info(format string, v ...any) {
	r.infos = append(r.infos, fmt.Sprintf(format, v...))
}

func (r *recorder) Warning(format string, v ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, v...))
}

func (r *recorder) Error(format string, v ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, v...))
}

// toyTable maps drone->airplane(2), car->car(1), pedestrian->person(0).
func toyTable() *mapping.Table {
	return &mapping.Table{
		Version:     "1",
		Placeholder: "none",
		Mapping:     map[int]int{0: 2, 1: 1, 4: 0},
		Taxonomy:    []string{"person", "car", "airplane"},
	}
}

// sourceDocument has annotations for categories 0, 1, 4 (mapped) and 2, 5 (unmapped).
func sourceDocument(t *testing.T) *coco.Document {
	t.Helper()

	doc, err := coco.Parse([]byte(`{
  "info": {"description": "TiaoZhanCup"},
  "images": [
    {"id": 1, "file_name": "seq01/0001.jpg", "width": 640, "height": 512, "license": 1},
    {"id": 2, "file_name": "seq01/0002.jpg", "width": 640, "height": 512}
  ],
  "annotations": [
    {"id": 1, "image_id": 1, "category_id": 0, "bbox": [1, 2, 3, 4], "area": 12, "iscrowd": 0, "ignore": 0},
    {"id": 2, "image_id": 1, "category_id": 2, "bbox": [1, 2, 3, 4], "area": 12, "iscrowd": 0},
    {"id": 3, "image_id": 2, "category_id": 4, "bbox": [5, 6, 7, 8], "area": 56, "iscrowd": 0},
    {"id": 4, "image_id": 2, "category_id": 5, "bbox": [5, 6, 7, 8], "area": 56, "iscrowd": 0},
    {"id": 5, "image_id": 2, "category_id": 1, "bbox": [9, 9, 2, 2], "area": 4, "iscrowd": 1}
  ],
  "categories": [
    {"id": 0, "name": "drone", "supercategory": "drone"},
    {"id": 1, "name": "car", "supercategory": "car"},
    {"id": 2, "name": "ship", "supercategory": "ship"},
    {"id": 4, "name": "pedestrian", "supercategory": "pedestrian"},
    {"id": 5, "name": "cyclist", "supercategory": "cyclist"}
  ]
}`))
	require.NoError(t, err)

	return doc
}
