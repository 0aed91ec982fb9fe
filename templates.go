package glob

import "github.com/globkit/fastglob/matcher"

// analyzeTemplateShape recognizes patterns built from a literal prefix, a
// single bracket expression, and a literal suffix — e.g. "report-[0-9].log" —
// and precompiles a decision function that checks the two literal spans by
// direct byte comparison and defers only the one variable byte to the
// bracket evaluator. This avoids the general star-backtrack loop entirely
// since the matched length is fixed once the literal spans' lengths are known.
func analyzeTemplateShape(p []byte, flags Flags) (templateFunc, bool) {
	open := -1

	for i, c := range p {
		if c == '*' || c == '?' {
			return nil, false
		}

		if c == '\\' {
			return nil, false
		}

		if c == '[' {
			if open >= 0 {
				return nil, false // more than one bracket: not this template
			}

			open = i
		}
	}

	if open < 0 {
		return nil, false
	}

	npi, _, valid := matcher.MatchBracketProbe(p, open, flags.matcherFlags())
	if !valid {
		return nil, false
	}

	prefix := p[:open]
	bracketPattern := p
	bracketStart := open
	suffix := p[npi:]

	for _, c := range suffix {
		if c == '[' {
			return nil, false
		}
	}

	caseFold := flags.CaseFold
	mflags := flags.matcherFlags()

	return func(candidate []byte) (matched, decided bool) {
		if len(candidate) != len(prefix)+1+len(suffix) {
			return false, true
		}

		if !bytesEqualFold(prefix, candidate[:len(prefix)], caseFold) {
			return false, true
		}

		if !bytesEqualFold(suffix, candidate[len(prefix)+1:], caseFold) {
			return false, true
		}

		ok := matcher.MatchBracketAt(bracketPattern, candidate, bracketStart, len(prefix), mflags)

		return ok, true
	}, true
}
