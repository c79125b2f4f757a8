// Package diagnostic provides structured errors, warnings and infos
// collected while validating mapping tables and assembling datasets.
//
// Key capabilities:
//   - Invalid mapping table entries (out-of-range targets, bad ids)
//   - Skipped inputs (unreadable images, malformed label lines)
//   - Dropped records (annotations with unmapped categories)
//   - Per-code counts for run summaries
package diagnostic
