// Package dataset reads a YOLO-style detection dataset laid out as
//
//	<root>/images/<folder>/<file>
//	<root>/labels/<folder>/<base>.txt
//	<root>/annotations/class.json
//
// Folders and files are always listed in lexicographic order so that ids
// assigned while walking the tree are reproducible across runs.
package dataset
