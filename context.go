package glob

import (
	"github.com/globkit/fastglob/brace"
	"github.com/globkit/fastglob/matcher"
)

// templateFunc is a precompiled decision function for one of the narrow,
// pre-enumerated pattern "shapes" the analyzer recognizes.
// It returns (matched, true) when it can decide the match outright, or
// (false, false) to defer to the general matcher.
type templateFunc func(candidate []byte) (matched, decided bool)

// suffixTester is satisfied by every suffix-matcher type in suffix.go; the
// analyzer installs at most one per Context, regardless of which shape won.
type suffixTester interface {
	MatchSuffix(candidate []byte) bool
}

// Context is the result of analyzing a pattern once under a fixed Flags
// value. It is immutable after construction and
// holds its own copy of the pattern bytes, taken by Compile. A Context
// built for one Flags value must never be reused with a
// different one; build a fresh Context instead.
type Context struct {
	pattern []byte
	flags   Flags

	hasWildcards    bool
	containsExtglob bool

	// literalEqual is true when the pattern has no metacharacters at all
	// (accounting for escapes), enabling a pure byte-equality dispatch.
	literalEqual bool

	requiredLastChar    byte
	hasRequiredLastChar bool

	suffix suffixTester

	template templateFunc

	// alternatives holds one sub-Context per brace-expanded alternative,
	// when the pattern contained "{a,b,c}" groups and no single suffix
	// bank could cover all of them. match() is the OR of every entry.
	alternatives []*Context
}

// Pattern returns the original pattern bytes the Context was built from.
func (c *Context) Pattern() []byte { return c.pattern }

// Flags returns the flag set the Context was compiled under.
func (c *Context) Flags() Flags { return c.flags }

// Compile performs the one-shot analysis, selecting the fastest
// applicable dispatch path for subsequent Match calls.
func Compile(pattern string, flags Flags) *Context {
	if flags.Brace && brace.HasAlternatives(pattern) {
		if alts, err := brace.Expand(pattern); err == nil && len(alts) > 1 {
			if bank, ok := buildSuffixBank(alts, flags); ok {
				return &Context{pattern: []byte(pattern), flags: flags, suffix: bank}
			}

			subs := make([]*Context, len(alts))
			for i, alt := range alts {
				subs[i] = Compile(alt, flags)
			}

			return &Context{pattern: []byte(pattern), flags: flags, alternatives: subs}
		}
	}

	p := []byte(pattern)

	ctx := &Context{pattern: p, flags: flags}

	ctx.hasWildcards = scanHasWildcards(p)
	ctx.containsExtglob = flags.ExtGlob && scanHasExtglob(p)
	ctx.literalEqual = !ctx.hasWildcards && !scanHasBackslash(p, flags)

	if !ctx.containsExtglob {
		if suffix, ok := analyzeSuffixShape(p, flags); ok {
			ctx.suffix = suffix
		} else if tmpl, ok := analyzeTemplateShape(p, flags); ok {
			ctx.template = tmpl
		}

		ctx.requiredLastChar, ctx.hasRequiredLastChar = analyzeRequiredLastChar(p, flags)
	}

	return ctx
}

// Match decides whether candidate satisfies the compiled pattern, following
// a fixed dispatch order, trying fast paths before falling back to the
// general matcher.
func (c *Context) Match(candidate string) bool {
	return c.match([]byte(candidate))
}

func (c *Context) match(candidate []byte) bool {
	if c.alternatives != nil {
		for _, sub := range c.alternatives {
			if sub.match(candidate) {
				return true
			}
		}

		return false
	}

	if c.containsExtglob {
		return matcher.Match(string(c.pattern), string(candidate), c.flags.matcherFlags())
	}

	if c.hasRequiredLastChar {
		if len(candidate) == 0 || !bytesEqualFold(candidate[len(candidate)-1:], []byte{c.requiredLastChar}, c.flags.CaseFold) {
			return false
		}
	}

	if c.template != nil {
		if matched, decided := c.template(candidate); decided {
			return matched
		}
	}

	if c.literalEqual {
		return bytesEqualFold(c.pattern, candidate, c.flags.CaseFold)
	}

	if c.suffix != nil {
		return c.suffix.MatchSuffix(candidate)
	}

	return matcher.Match(string(c.pattern), string(candidate), c.flags.matcherFlags())
}

// Match is the uncompiled one-shot entry point: it compiles pattern and
// immediately matches candidate against it, for callers without a
// precompiled Context.
func Match(pattern, candidate string, flags Flags) bool {
	return Compile(pattern, flags).Match(candidate)
}

// MatchGlobSimple is a lightweight single-shot entry point,
// for client code (e.g. the gitignore filter) that just needs a quick
// decision and does not care about period handling. Pattern and path are
// compared segment by segment, so wildcards never cross a '/'. A "**"
// segment is honored as a zero-or-more-component wildcard when
// doublestarRecursive is set, by running the segment-level DP of
// matchSegments; otherwise it is an ordinary single-segment wildcard.
func MatchGlobSimple(pattern, path string, doublestarRecursive bool) bool {
	if !doublestarRecursive || !containsDoublestarSegment(pattern) {
		segs, comps := splitSegments(pattern), splitPathComponents(path)
		if len(segs) != len(comps) {
			return false
		}

		for i := range segs {
			if !matcher.Match(segs[i], comps[i], matcher.Flags{}) {
				return false
			}
		}

		return true
	}

	segments := splitSegments(pattern)

	return matchSegments(segments, splitPathComponents(path), Flags{DoublestarRecursive: true})
}

func scanHasWildcards(p []byte) bool {
	for _, c := range p {
		if c == '*' || c == '?' || c == '[' {
			return true
		}
	}

	return false
}

func scanHasExtglob(p []byte) bool {
	for i := 0; i+1 < len(p); i++ {
		if (p[i] == '?' || p[i] == '*' || p[i] == '+' || p[i] == '@' || p[i] == '!') && p[i+1] == '(' {
			return true
		}
	}

	return false
}

func scanHasBackslash(p []byte, flags Flags) bool {
	if flags.NoEscape {
		return false
	}

	for _, c := range p {
		if c == '\\' {
			return true
		}
	}

	return false
}

// analyzeRequiredLastChar extracts a literal byte the candidate must end
// with, when the pattern demands it regardless of what precedes: the
// pattern's final byte is a literal not immediately preceded by a wildcard
// that could itself absorb it, and the pattern does not end with a bracket
// expression. A pattern ending in an odd run of backslashes (escaping
// disabled by NoEscape aside) ends in a dangling escape: matchEscape treats
// that as a zero-width token requiring only that the candidate be fully
// consumed, not that its last byte be '\\', so the fast path must decline
// rather than impose a required-last-byte check the general matcher
// wouldn't enforce.
func analyzeRequiredLastChar(p []byte, flags Flags) (c byte, ok bool) {
	if len(p) == 0 {
		return 0, false
	}

	last := p[len(p)-1]
	if last == '*' || last == '?' || last == ']' {
		return 0, false
	}

	if !flags.NoEscape && last == '\\' {
		if trailingBackslashRun(p)%2 == 1 {
			return 0, false
		}
	}

	return last, true
}

// trailingBackslashRun counts the consecutive '\\' bytes at the end of p.
func trailingBackslashRun(p []byte) int {
	n := 0
	for i := len(p) - 1; i >= 0 && p[i] == '\\'; i-- {
		n++
	}

	return n
}

func bytesEqualFold(a, b []byte, caseFold bool) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		x, y := a[i], b[i]

		if caseFold {
			x = foldByte(x)
			y = foldByte(y)
		}

		if x != y {
			return false
		}
	}

	return true
}

func foldByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}

	return b
}
