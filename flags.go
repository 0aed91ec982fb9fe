// Package glob is a high-throughput glob pattern engine: given a shell-style
// pattern it produces the set of matching paths, either by filtering an
// in-memory path list or by driving the filesystem walker in package walker.
// It wraps package matcher's single-pattern fnmatch core with a one-shot
// pattern analyzer (Context) that picks specialized fast paths, and a
// segment-aware in-memory path matcher with "**" and hidden-file support.
package glob

import "github.com/globkit/fastglob/matcher"

// Flags is the fixed, enumerated option set. Every option the core
// recognizes is named here; unrecognized combinations are not possible by
// construction. The zero value is the most conservative dialect (no brace,
// no tilde, no extglob, no "**").
type Flags struct {
	// NoEscape: '\' is not an escape; treated literally.
	NoEscape bool
	// Period: hidden-file wildcards ('.*') match files beginning with '.'.
	Period bool
	// NoCheck: if no match, return the pattern itself as the sole result.
	NoCheck bool
	// NoSort: omit the final lexicographic sort.
	NoSort bool
	// Mark: append '/' to directory results (walker-side only).
	Mark bool
	// Brace: enable '{a,b,c}' expansion before matching.
	Brace bool
	// Tilde: expand leading '~' / '~user'.
	Tilde bool
	// TildeCheck: fail if '~user' cannot be resolved.
	TildeCheck bool
	// OnlyDir: match only directory entries (walker-side only).
	OnlyDir bool
	// ExtGlob: enable '?() *() +() @() !()' constructs.
	ExtGlob bool
	// DoublestarRecursive: treat "**" as the zero-or-more-segment wildcard.
	DoublestarRecursive bool
	// GitIgnore: apply a loaded gitignore set as a secondary filter.
	GitIgnore bool
	// CaseFold: ASCII-only case-insensitive matching. Not part of the named
	// option set, but threaded through since a Context is only valid for
	// one fixed Flags value.
	CaseFold bool
}

// matcherFlags projects the subset of Flags the byte-level matcher core
// understands. The path-level concerns (Brace, Tilde, Mark, OnlyDir,
// NoCheck, NoSort, GitIgnore, DoublestarRecursive) are handled above the
// core, in Context and the in-memory path matcher.
func (f Flags) matcherFlags() matcher.Flags {
	return matcher.Flags{
		NoEscape: f.NoEscape,
		Period:   f.Period,
		CaseFold: f.CaseFold,
		ExtGlob:  f.ExtGlob,
	}
}
