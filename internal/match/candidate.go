package match

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Candidate is a taxonomy class scored against a source class name.
type Candidate struct {
	// ID is the position of the class in the taxonomy.
	ID    int
	Name  string
	Score float64
}

func (c Candidate) String() string {
	return fmt.Sprintf("%s (ID: %d)", c.Name, c.ID)
}

// CandidateList is a ranked list of candidates.
type CandidateList []Candidate

// Rank scores name against every class of taxonomy, where the index is the
// class id. The result is ordered by descending score, then by id.
func Rank(name string, taxonomy []string) CandidateList {
	candidates := make(CandidateList, 0, len(taxonomy))

	for id, target := range taxonomy {
		candidates = append(candidates, Candidate{
			ID:    id,
			Name:  target,
			Score: ScoreNames(name, target),
		})
	}

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return candidates
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if there are none.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

func (c CandidateList) String() string {
	parts := make([]string, len(c))
	for i, cand := range c {
		parts[i] = cand.String()
	}

	return strings.Join(parts, ", ")
}
