package mapping

import "coco-prep/internal/match"

// Suggestion limits for unmapped source classes.
const (
	SuggestionScore = 0.6
	SuggestionCount = 3
)

// Suggest ranks the taxonomy against a source class name and returns up to
// SuggestionCount classes scoring at least SuggestionScore.
func Suggest(t *Table, name string) match.CandidateList {
	return match.Rank(name, t.Taxonomy).AboveThreshold(SuggestionScore).Top(SuggestionCount)
}
