// Package brace expands shell-style "{a,b,c}" alternatives in a pattern
// into the set of patterns obtained by substituting each alternative in
// turn, before the result reaches the matcher. Nesting is supported;
// escaped braces and commas are passed through literally.
package brace

import (
	"errors"
)

// ErrTooManyAlternatives is returned when a brace expression expands past
// MaxAlternatives.
var ErrTooManyAlternatives = errors.New("brace: expansion exceeded alternative cap")

// MaxAlternatives bounds the number of patterns one Expand call may
// produce, guarding against a pathological "{a,b}{c,d}{e,f}..." blowup.
const MaxAlternatives = 32

// Expand returns the set of patterns obtained by expanding every top-level
// "{...}" group in pattern. A pattern with no brace groups expands to
// itself. Expansion is applied left to right and is fully recursive: each
// alternative is itself expanded before being substituted in.
func Expand(pattern string) ([]string, error) {
	results := []string{""}

	i := 0
	for i < len(pattern) {
		c := pattern[i]

		if c == '\\' && i+1 < len(pattern) {
			results = appendToAll(results, pattern[i:i+2])
			i += 2

			continue
		}

		if c == '{' {
			end, ok := findMatchingBrace(pattern, i)
			if !ok {
				results = appendToAll(results, string(c))
				i++

				continue
			}

			alts, ok := splitAlternatives(pattern[i+1 : end])
			if !ok {
				results = appendToAll(results, string(c))
				i++

				continue
			}

			expandedAlts := make([]string, 0, len(alts))

			for _, alt := range alts {
				sub, err := Expand(alt)
				if err != nil {
					return nil, err
				}

				expandedAlts = append(expandedAlts, sub...)
			}

			next := make([]string, 0, len(results)*len(expandedAlts))

			for _, r := range results {
				for _, a := range expandedAlts {
					if len(next) >= MaxAlternatives {
						return next, ErrTooManyAlternatives
					}

					next = append(next, r+a)
				}
			}

			results = next
			i = end + 1

			continue
		}

		results = appendToAll(results, string(c))
		i++
	}

	return results, nil
}

func appendToAll(results []string, s string) []string {
	for i := range results {
		results[i] += s
	}

	return results
}

// findMatchingBrace locates the '}' matching the '{' at pattern[open],
// tracking nesting depth and honoring backslash escapes. It does not look
// for commas: a group with none (e.g. "{foo}") is still found here, and
// splitAlternatives then rejects it so Expand leaves it literal.
func findMatchingBrace(pattern string, open int) (int, bool) {
	depth := 0

	for i := open; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}

// splitAlternatives splits the interior of a brace group on top-level
// (depth-0) unescaped commas. A group with zero commas (no alternation) is
// rejected so the caller falls back to treating the braces literally,
// matching the convention that "{foo}" alone is not an alternation.
func splitAlternatives(interior string) ([]string, bool) {
	var alts []string

	depth := 0
	start := 0
	sawComma := false

	for i := 0; i < len(interior); i++ {
		switch interior[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				sawComma = true

				alts = append(alts, interior[start:i])
				start = i + 1
			}
		}
	}

	if !sawComma {
		return nil, false
	}

	alts = append(alts, interior[start:])

	return alts, true
}

// HasAlternatives reports whether pattern contains at least one
// expandable "{a,b}" group, without performing the expansion.
func HasAlternatives(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '{':
			if end, ok := findMatchingBrace(pattern, i); ok {
				if _, ok := splitAlternatives(pattern[i+1 : end]); ok {
					return true
				}
			}
		}
	}

	return false
}
