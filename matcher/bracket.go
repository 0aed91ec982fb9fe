package matcher

// bracketBitmap is a 256-bit set, one bit per byte value, built once per
// bracket expression evaluation: a 32-byte bitmap with one bit per byte
// value; lookup is (bitmap[c>>3] >> (c&7)) & 1.
type bracketBitmap [32]byte

func (b *bracketBitmap) set(c byte) {
	b[c>>3] |= 1 << (c & 7)
}

func (b *bracketBitmap) test(c byte) bool {
	return b[c>>3]>>(c&7)&1 != 0
}

func (b *bracketBitmap) setRange(lo, hi byte) {
	for c := int(lo); c <= int(hi); c++ {
		b.set(byte(c))
	}
}

// posixClasses maps a POSIX class name to the predicate contributing its
// ASCII member set to a bracket bitmap.
var posixClasses = map[string]func(byte) bool{
	"alpha":  asciiIsAlpha,
	"digit":  asciiIsDigit,
	"alnum":  asciiIsAlnum,
	"space":  func(b byte) bool { return asciiIsSpace(b) || b == '\n' || b == '\r' || b == '\f' || b == '\v' },
	"blank":  asciiIsSpace,
	"lower":  asciiIsLower,
	"upper":  asciiIsUpper,
	"punct":  asciiIsPunct,
	"xdigit": asciiIsXDigit,
	"cntrl":  asciiIsCntrl,
	"graph":  asciiIsGraph,
	"print":  asciiIsPrint,
}

// matchBracket parses and evaluates a bracket expression "[...]" starting at
// pattern[pi] (which must be '['). It returns the pattern index just past
// the closing ']' in npi, whether the candidate byte at candidate[si]
// satisfies the expression in matched, and whether the expression was
// well-formed in valid. An unterminated bracket, a dangling escape inside
// one, or an unrecognized POSIX class name all yield valid=false — the
// caller degrades to treating '[' as a literal byte.
func matchBracket(pattern, candidate []byte, pi, si int, flags Flags) (npi int, matched, valid bool) {
	idx := pi + 1
	if idx >= len(pattern) {
		return 0, false, false
	}

	negated := false

	if pattern[idx] == '!' || pattern[idx] == '^' {
		negated = true
		idx++
	}

	var bitmap bracketBitmap

	first := true

	for idx < len(pattern) && (first || pattern[idx] != ']') {
		first = false

		// POSIX class: "[:name:]" nested inside the bracket expression.
		if pattern[idx] == '[' && idx+1 < len(pattern) && pattern[idx+1] == ':' {
			end, ok := findClassEnd(pattern, idx)
			if !ok {
				return 0, false, false
			}

			name := string(pattern[idx+2 : end-1])

			pred, known := posixClasses[name]
			if !known {
				return 0, false, false
			}

			addPredicateToBitmap(&bitmap, pred)

			idx = end + 1

			continue
		}

		// Escape inside a bracket expression.
		if pattern[idx] == '\\' && !flags.NoEscape {
			idx++
			if idx >= len(pattern) {
				return 0, false, false
			}

			lo := pattern[idx]
			idx++

			if idx+1 < len(pattern) && pattern[idx] == '-' && pattern[idx+1] != ']' {
				idx++

				hi := pattern[idx]
				if hi == '\\' && idx+1 < len(pattern) && !flags.NoEscape {
					idx++
					hi = pattern[idx]
				}

				idx++
				addRangeFolded(&bitmap, lo, hi, flags)

				continue
			}

			addByteFolded(&bitmap, lo, flags)

			continue
		}

		// Range "a-b": '-' is literal as the last member before ']' or
		// immediately after an opening marker with nothing preceding it.
		if idx+2 < len(pattern) && pattern[idx+1] == '-' && pattern[idx+2] != ']' {
			lo := pattern[idx]
			hi := pattern[idx+2]
			idx += 3

			addRangeFolded(&bitmap, lo, hi, flags)

			continue
		}

		addByteFolded(&bitmap, pattern[idx], flags)

		idx++
	}

	if idx >= len(pattern) || pattern[idx] != ']' {
		return 0, false, false
	}

	npi = idx + 1

	if si >= len(candidate) {
		// No candidate byte to test; expression is well-formed but cannot match.
		return npi, negated, true
	}

	hit := bitmap.test(flags.fold(candidate[si]))

	return npi, hit != negated, true
}

// MatchBracketProbe exposes matchBracket's parse step for callers outside
// the package that need to know where a bracket expression ends without
// testing it against a candidate yet (used by the pattern analyzer to
// recognize single-bracket template shapes).
func MatchBracketProbe(pattern []byte, pi int, flags Flags) (npi int, matched, valid bool) {
	return matchBracket(pattern, nil, pi, 0, flags)
}

// MatchBracketAt evaluates the bracket expression starting at pattern[pi]
// against a single candidate byte at candidate[si], for callers that have
// already fixed the expression's position via MatchBracketProbe.
func MatchBracketAt(pattern, candidate []byte, pi, si int, flags Flags) bool {
	_, matched, valid := matchBracket(pattern, candidate, pi, si, flags)

	return valid && matched
}

// addPredicateToBitmap sets every byte value satisfying pred.
func addPredicateToBitmap(b *bracketBitmap, pred func(byte) bool) {
	for c := 0; c < 256; c++ {
		if pred(byte(c)) {
			b.set(byte(c))
		}
	}
}

// addByteFolded adds c to the bitmap, plus its case counterpart under CaseFold.
func addByteFolded(b *bracketBitmap, c byte, flags Flags) {
	b.set(c)

	if flags.CaseFold {
		if asciiIsUpper(c) {
			b.set(asciiToLower(c))
		} else if asciiIsLower(c) {
			b.set(c - asciiLowerDelta)
		}
	}
}

// addRangeFolded adds the inclusive byte range [lo,hi] to the bitmap, plus
// case counterparts under CaseFold. Bytewise only — no locale awareness:
// "[A-z]" deliberately includes the ASCII symbols between 'Z' and 'a'.
func addRangeFolded(b *bracketBitmap, lo, hi byte, flags Flags) {
	if lo > hi {
		lo, hi = hi, lo
	}

	b.setRange(lo, hi)

	if !flags.CaseFold {
		return
	}

	for c := int(lo); c <= int(hi); c++ {
		addByteFolded(b, byte(c), flags)
	}
}

// findClassEnd locates the ":]" terminator of a "[:name:]" POSIX class token
// starting at pattern[start] == '['. Returns the index of the closing ']'.
func findClassEnd(pattern []byte, start int) (end int, ok bool) {
	idx := start + 2 // past "[:"

	for idx < len(pattern) {
		if pattern[idx] == ':' && idx+1 < len(pattern) && pattern[idx+1] == ']' {
			return idx + 1, true
		}

		idx++
	}

	return 0, false
}
