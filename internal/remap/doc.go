// Package remap moves COCO annotation files from one category taxonomy to
// another using a mapping.Table.
//
// The output document keeps every image and every top-level key of the
// source. Its categories section is replaced by the table's taxonomy, and
// each annotation either gets its category id rewritten or, when the table
// has no entry for it, is dropped. Every decision is reported.
package remap
