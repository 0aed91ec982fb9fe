// Package capi is a thin, typed façade over the POSIX glob(3) / globfree(3)
// contract: a glob_t-shaped result struct, flag constants that map onto
// package glob's Flags by fixed bit position, and ToInt/FromInt conversions
// so the flag set can round-trip as a single c_int-shaped value across an
// ABI boundary. No actual cgo export is attempted here — see DESIGN.md.
package capi

import (
	glob "github.com/globkit/fastglob"
	"github.com/globkit/fastglob/walker"
)

// Flag bit positions, fixed and never renumbered once assigned: a release
// that adds a flag appends a new bit, it never reassigns an existing one.
const (
	FlagNoEscape uint32 = 1 << iota
	FlagPeriod
	FlagNoCheck
	FlagNoSort
	FlagMark
	FlagBrace
	FlagTilde
	FlagTildeCheck
	FlagOnlyDir
	FlagExtGlob
	FlagDoublestarRecursive
	FlagGitIgnore
	FlagCaseFold
)

// ToInt packs Flags into a single bitfield value, one bit per flag, in the
// fixed positions declared above.
func ToInt(f glob.Flags) uint32 {
	var v uint32

	if f.NoEscape {
		v |= FlagNoEscape
	}

	if f.Period {
		v |= FlagPeriod
	}

	if f.NoCheck {
		v |= FlagNoCheck
	}

	if f.NoSort {
		v |= FlagNoSort
	}

	if f.Mark {
		v |= FlagMark
	}

	if f.Brace {
		v |= FlagBrace
	}

	if f.Tilde {
		v |= FlagTilde
	}

	if f.TildeCheck {
		v |= FlagTildeCheck
	}

	if f.OnlyDir {
		v |= FlagOnlyDir
	}

	if f.ExtGlob {
		v |= FlagExtGlob
	}

	if f.DoublestarRecursive {
		v |= FlagDoublestarRecursive
	}

	if f.GitIgnore {
		v |= FlagGitIgnore
	}

	if f.CaseFold {
		v |= FlagCaseFold
	}

	return v
}

// FromInt unpacks a bitfield value produced by ToInt (or a compatible C
// caller) back into Flags.
func FromInt(v uint32) glob.Flags {
	return glob.Flags{
		NoEscape:            v&FlagNoEscape != 0,
		Period:              v&FlagPeriod != 0,
		NoCheck:             v&FlagNoCheck != 0,
		NoSort:              v&FlagNoSort != 0,
		Mark:                v&FlagMark != 0,
		Brace:               v&FlagBrace != 0,
		Tilde:               v&FlagTilde != 0,
		TildeCheck:          v&FlagTildeCheck != 0,
		OnlyDir:             v&FlagOnlyDir != 0,
		ExtGlob:             v&FlagExtGlob != 0,
		DoublestarRecursive: v&FlagDoublestarRecursive != 0,
		GitIgnore:           v&FlagGitIgnore != 0,
		CaseFold:            v&FlagCaseFold != 0,
	}
}

// Result mirrors glob(3)'s glob_t: a count and a slice of matched paths.
// GlPathc/GlPathv name the POSIX fields; PathCount/Paths are the idiomatic
// aliases Go callers should prefer.
type Result struct {
	GlPathc   int
	GlPathv   []string
	PathCount int
	Paths     []string
}

// Glob mirrors glob(3): it walks root under the flags packed into flagBits,
// filtering entries against pattern, and returns a Result. GlobFree has no
// Go-side counterpart since the returned slices are ordinarily garbage
// collected; it exists only so a caller porting C call sites has a
// symmetrical pair to call.
func Glob(root, pattern string, flagBits uint32) (*Result, error) {
	flags := FromInt(flagBits)

	paths, err := walker.WalkGlob(root, pattern, walker.Options{Flags: flags})
	if err != nil {
		return nil, err
	}

	return &Result{
		GlPathc:   len(paths),
		GlPathv:   paths,
		PathCount: len(paths),
		Paths:     paths,
	}, nil
}

// GlobFree releases a Result. It is a no-op under Go's garbage collector;
// provided for call-site parity with globfree(3).
func GlobFree(*Result) {}
