// Package match scores class names against each other for fuzzy lookup.
//
// Key functions:
//   - NormalizeName: folds case, separators and camel case
//   - Distance, Similarity: rune-wise Levenshtein edit distance
//   - Rank: orders a taxonomy by similarity to one class name
package match
