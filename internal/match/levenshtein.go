package match

// Distance computes the Levenshtein distance between a and b: the minimum
// number of single-rune insertions, deletions or substitutions that turn
// one into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	// Keep ra the shorter one; only two rows of its length are kept.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity returns 1 - Distance(a, b) / max(len(a), len(b)), lengths in
// runes. Identical strings score 1.0.
func Similarity(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(Distance(a, b))/float64(maxLen)
}

// ScoreNames compares two class names after normalization. The singular
// forms are compared too and the better score wins, so "ship" and "Ships"
// score 1.0.
func ScoreNames(a, b string) float64 {
	score := Similarity(NormalizeName(a), NormalizeName(b))

	singular := Similarity(NormalizeNameSingular(a), NormalizeNameSingular(b))
	if singular > score {
		score = singular
	}

	return score
}
