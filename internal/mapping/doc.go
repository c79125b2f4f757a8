// Package mapping provides the category mapping table used to move a COCO
// dataset from one label taxonomy to another.
//
// A table is a YAML file:
//
//	version: "1"
//	name: tiaozhancup-objects365
//	placeholder: none          # supercategory of every output category
//	mapping:                   # source category id -> target category id
//	  0: 108
//	  4: 0
//	taxonomy:                  # target category names, index = id
//	  - person
//	  - sneakers
//
// The mapping is partial and one-directional. A source id without an entry
// marks annotations that are dropped, not an error.
//
// Validate checks a table eagerly: every target id must fall inside the
// taxonomy, so a remapped document never references a missing category.
package mapping
