// Package assemble builds a COCO test set from a YOLO-labelled image tree.
//
// The last N image folders, in lexicographic order, are walked file by file.
// Each readable image becomes a COCO image and each valid label line of its
// label file becomes an annotation. Image and annotation ids are assigned
// from 1 in walk order, so the same tree always yields the same ids.
//
// Unreadable images, malformed label lines and missing label files never
// stop a run: they are reported and collected in the run Report.
package assemble
