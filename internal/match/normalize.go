package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a class name for fuzzy matching:
// 1. Split at separators and camel-case boundaries.
// 2. Lower-case every token.
// 3. Join the tokens without separators.
//
// "Traffic Light", "traffic_light" and "TrafficLight" all become
// "trafficlight".
func NormalizeName(s string) string {
	return strings.Join(Tokenize(s), "")
}

// NormalizeNameSingular normalizes s and drops a plural "s" suffix.
// Words ending in "ss" or "us", and names of three letters or fewer, are
// left alone.
func NormalizeNameSingular(s string) string {
	n := NormalizeName(s)

	if len(n) <= 3 || !strings.HasSuffix(n, "s") {
		return n
	}

	if strings.HasSuffix(n, "ss") || strings.HasSuffix(n, "us") {
		return n
	}

	return strings.TrimSuffix(n, "s")
}

// Tokenize splits a class name into lower-case words.
func Tokenize(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits s at separators and camel-case boundaries.
// Examples:
//   - "TrafficLight" -> ["Traffic", "Light"]
//   - "hot-air balloon" -> ["hot", "air", "balloon"]
//   - "SUVWheel" -> ["SUV", "Wheel"]
func tokenizeCamelCase(s string) []string {
	var tokens []string

	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune("_-/.,", r)
}

// startsToken reports whether a new token begins at runes[i].
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "trafficLight": lower to upper.
	if !unicode.IsUpper(prev) {
		return true
	}

	// "SUVWheel": last capital of an acronym followed by lower case.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
