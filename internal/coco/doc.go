// Package coco provides the COCO detection document model together with
// loading and writing of COCO JSON files.
//
// Only the fields the tools interpret are typed. Every other key of the
// document, of an image or of an annotation is kept in an Extra map and
// written back unchanged, so a document survives a load/write round trip
// with its custom fields intact.
//
// Documents are written two-space indented, without HTML escaping, through
// a temporary file renamed into place.
package coco
