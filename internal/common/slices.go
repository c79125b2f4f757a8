package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// LastN returns the trailing n elements of the slice.
// The whole slice is returned when n exceeds its length, an empty slice when n <= 0.
func LastN[S ~[]E, E any](s S, n int) S {
	if n <= 0 {
		return s[:0:0]
	}

	if n >= len(s) {
		return s
	}

	return s[len(s)-n:]
}
