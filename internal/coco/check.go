package coco

import (
	"fmt"
	"strconv"

	"coco-prep/internal/diagnostic"
)

// Diagnostic codes reported by Check.
const (
	CodeDuplicateImageID      = "duplicate_image_id"
	CodeDuplicateAnnotationID = "duplicate_annotation_id"
	CodeDuplicateCategoryID   = "duplicate_category_id"
	CodeDanglingImageID       = "dangling_image_id"
	CodeUnknownCategoryID     = "unknown_category_id"
)

// Check verifies the ids and references of a document.
//
// Errors: duplicate image, annotation or category ids, annotations whose
// image_id names no image. Warnings: annotations whose category_id is not
// in the categories section.
func Check(doc *Document) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	images := doc.ImageIDs()
	if len(images) != len(doc.Images) {
		seen := map[int]bool{}
		for _, img := range doc.Images {
			if seen[img.ID] {
				res.AddError(CodeDuplicateImageID, fmt.Sprintf("image id %d is used more than once", img.ID),
					"images", strconv.Itoa(img.ID))
			}

			seen[img.ID] = true
		}
	}

	categories := doc.CategoryNames()
	if len(categories) != len(doc.Categories) {
		seen := map[int]bool{}
		for _, c := range doc.Categories {
			if seen[c.ID] {
				res.AddError(CodeDuplicateCategoryID, fmt.Sprintf("category id %d is used more than once", c.ID),
					"categories", strconv.Itoa(c.ID))
			}

			seen[c.ID] = true
		}
	}

	annotations := map[int]bool{}

	for _, ann := range doc.Annotations {
		loc := strconv.Itoa(ann.ID)

		if annotations[ann.ID] {
			res.AddError(CodeDuplicateAnnotationID, fmt.Sprintf("annotation id %d is used more than once", ann.ID),
				"annotations", loc)
		}

		annotations[ann.ID] = true

		if _, ok := images[ann.ImageID]; !ok {
			res.AddError(CodeDanglingImageID, fmt.Sprintf("image_id %d names no image", ann.ImageID),
				"annotations", loc)
		}

		if _, ok := categories[ann.CategoryID]; !ok {
			res.AddWarning(CodeUnknownCategoryID, fmt.Sprintf("category_id %d is not in categories", ann.CategoryID),
				"annotations", loc)
		}
	}

	return res
}
