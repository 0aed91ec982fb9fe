package glob

import (
	"sort"
	"strings"
)

// splitPathComponents splits a slash-separated path into its segments,
// preserving leading-empty segments for absolute paths (a leading "/"
// yields a leading "" segment; an absolute pattern has the same leading ""
// segment, which never matches the non-empty first component of a
// relative path).
func splitPathComponents(path string) []string {
	return strings.Split(path, "/")
}

// splitSegments splits a pattern into its slash-separated segments the same
// way, so "**" can be recognized when it occupies an entire segment.
func splitSegments(pattern string) []string {
	return strings.Split(pattern, "/")
}

func containsDoublestarSegment(pattern string) bool {
	for _, seg := range splitSegments(pattern) {
		if seg == "**" {
			return true
		}
	}

	return false
}

// isHiddenPathComponent reports whether pathSeg must be hidden from patSeg
// under flags: "." and ".." are hidden regardless of Period, unless patSeg
// is literally that same component; an ordinary dot-file is hidden only
// when Period is clear and patSeg does not itself start with '.'.
func isHiddenPathComponent(patSeg, pathSeg string, flags Flags) bool {
	if pathSeg == "." || pathSeg == ".." {
		return patSeg != pathSeg
	}

	if !strings.HasPrefix(pathSeg, ".") {
		return false
	}

	return !flags.Period && !strings.HasPrefix(patSeg, ".")
}

// matchSegment decides whether one path segment satisfies one non-"**"
// pattern segment, honoring hidden-component rules.
func matchSegment(patSeg, pathSeg string, flags Flags) bool {
	if isHiddenPathComponent(patSeg, pathSeg, flags) {
		return false
	}

	return Match(patSeg, pathSeg, flags.withoutPathLevelConcerns())
}

// withoutPathLevelConcerns projects Flags down to the subset relevant to a
// single-segment match, since Period's hidden-component effect is already
// applied by the caller at the segment level.
func (f Flags) withoutPathLevelConcerns() Flags {
	f2 := f
	f2.Period = true // hidden-component gating already done by the caller

	return f2
}

// matchSegments decides whether pathSegs satisfies the segment-split
// pattern segs, where a "**" segment matches zero or more whole path
// segments (including across directory boundaries), via the segment-level
// dynamic-programming sweep: dp[j] means "segs[:i] matches pathSegs[:j]".
// A trailing "**" requires at least one remaining segment, matching the
// "dir/** matches everything inside dir, not dir itself" convention.
func matchSegments(segs, pathSegs []string, flags Flags) bool {
	n := len(pathSegs)

	dp := make([]bool, n+1)
	dp[0] = true

	for i, seg := range segs {
		next := make([]bool, n+1)

		if seg == "**" {
			trailing := i == len(segs)-1
			any := false

			for j := 0; j <= n; j++ {
				if trailing {
					next[j] = any

					if dp[j] {
						any = true
					}
				} else {
					if dp[j] {
						any = true
					}

					next[j] = any
				}
			}
		} else {
			for j := 0; j < n; j++ {
				if dp[j] && matchSegment(seg, pathSegs[j], flags) {
					next[j+1] = true
				}
			}
		}

		dp = next
	}

	return dp[n]
}

// MatchPaths filters paths to those matching pattern, applying brace and
// tilde preprocessing, doublestar segment semantics when
// flags.DoublestarRecursive is set, and the NoSort/NoCheck post-processing
// steps.
func MatchPaths(pattern string, paths []string, flags Flags) ([]string, error) {
	return MatchPathsAt("", pattern, paths, flags)
}

// MatchPathsAt is the rooted variant: each entry in paths is a full path,
// but pattern is matched against the substring starting at base's length
// plus one (the separator byte), so pattern itself is written relative to
// base. A path not rooted under base (missing the prefix, or missing the
// separator right after it) never matches. Hits are reported as the
// original full path, not the trimmed substring. An empty base matches
// every path's entire string, the behavior MatchPaths relies on.
func MatchPathsAt(base, pattern string, paths []string, flags Flags) ([]string, error) {
	patterns, err := preprocessPattern(pattern, flags)
	if err != nil {
		return nil, err
	}

	matches := compileBatchMatcher(patterns, flags)

	seen := make(map[string]bool, len(paths))

	var results []string

	for _, p := range paths {
		rel, ok := pathRelativeToBase(base, p)
		if !ok {
			continue
		}

		if matches(rel) {
			if seen[p] {
				continue
			}

			seen[p] = true

			results = append(results, applyMark(p, flags))
		}
	}

	if len(results) == 0 && flags.NoCheck {
		results = []string{pattern}
	}

	if !flags.NoSort {
		sort.Strings(results)
	}

	return results, nil
}

// pathRelativeToBase strips base and its trailing separator from path, per
// spec's "substring starting at base.len+1" rule. An empty base leaves
// path untouched.
func pathRelativeToBase(base, path string) (string, bool) {
	if base == "" {
		return path, true
	}

	if !strings.HasPrefix(path, base) {
		return "", false
	}

	rest := path[len(base):]
	if !strings.HasPrefix(rest, "/") {
		return "", false
	}

	return rest[1:], true
}

// compiledAlternative is one brace-expanded pattern alternative, pre-split
// into segments with each non-"**" segment compiled into a Context exactly
// once. MatchPathsAt builds these once per call and reuses them across
// every candidate in the paths slice, instead of the general matcher
// recompiling a fresh Context per segment on every single path.
type compiledAlternative struct {
	segs       []string
	segCtx     []*Context // parallel to segs; nil entry at a "**" position
	doublestar bool
}

func compileAlternative(pattern string, flags Flags) compiledAlternative {
	segs := splitSegments(pattern)
	segFlags := flags.withoutPathLevelConcerns()

	doublestar := flags.DoublestarRecursive && containsDoublestarSegment(pattern)

	ca := compiledAlternative{segs: segs, segCtx: make([]*Context, len(segs)), doublestar: doublestar}

	for i, seg := range segs {
		if doublestar && seg == "**" {
			continue
		}

		ca.segCtx[i] = Compile(seg, segFlags)
	}

	return ca
}

func (ca compiledAlternative) match(path string, flags Flags) bool {
	pathSegs := splitPathComponents(path)

	if ca.doublestar {
		return matchSegmentsCompiled(ca.segs, ca.segCtx, pathSegs, flags)
	}

	if len(ca.segs) != len(pathSegs) {
		return false
	}

	for i := range ca.segs {
		if isHiddenPathComponent(ca.segs[i], pathSegs[i], flags) {
			return false
		}

		if !ca.segCtx[i].Match(pathSegs[i]) {
			return false
		}
	}

	return true
}

// matchSegmentsCompiled is matchSegments' batched counterpart: it takes the
// already-compiled Context per non-"**" segment instead of recompiling one
// from the segment's source text on every dp cell it tests.
func matchSegmentsCompiled(segs []string, segCtx []*Context, pathSegs []string, flags Flags) bool {
	n := len(pathSegs)

	dp := make([]bool, n+1)
	dp[0] = true

	for i, seg := range segs {
		next := make([]bool, n+1)

		if seg == "**" {
			trailing := i == len(segs)-1
			any := false

			for j := 0; j <= n; j++ {
				if trailing {
					next[j] = any

					if dp[j] {
						any = true
					}
				} else {
					if dp[j] {
						any = true
					}

					next[j] = any
				}
			}
		} else {
			ctx := segCtx[i]

			for j := 0; j < n; j++ {
				if dp[j] && !isHiddenPathComponent(seg, pathSegs[j], flags) && ctx.Match(pathSegs[j]) {
					next[j+1] = true
				}
			}
		}

		dp = next
	}

	return dp[n]
}

// allSingleSegment reports whether none of patterns contains a '/', the
// precondition for the brace suffix bank (a pure byte-level suffix test,
// with no notion of a path separator it must not cross).
func allSingleSegment(patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(p, "/") {
			return false
		}
	}

	return true
}

// compileBatchMatcher compiles pattern's brace-expanded alternatives
// exactly once and returns a function deciding whether a (already
// base-relative) path satisfies any of them, reused across every candidate
// in a path list. When every alternative reduces to the single-segment
// "PREFIX*TAIL" shape with one common PREFIX, the same suffix bank
// glob.Compile builds for a one-shot brace pattern is built once here too
// and used directly against single-segment paths — the basename-only SIMD
// pass spec.md's brace fast path describes, now actually reachable from the
// path-list entry point instead of only from a single compiled Context.
func compileBatchMatcher(patterns []string, flags Flags) func(path string) bool {
	if len(patterns) > 1 && allSingleSegment(patterns) {
		if bank, ok := buildSuffixBank(patterns, flags); ok {
			star := strings.IndexByte(patterns[0], '*')
			allowsHidden := strings.HasPrefix(patterns[0][:star], ".")

			return func(path string) bool {
				if strings.Contains(path, "/") {
					return false
				}

				if path == "." || path == ".." {
					return false
				}

				if strings.HasPrefix(path, ".") && !flags.Period && !allowsHidden {
					return false
				}

				return bank.MatchSuffix([]byte(path))
			}
		}
	}

	alts := make([]compiledAlternative, len(patterns))
	for i, p := range patterns {
		alts[i] = compileAlternative(p, flags)
	}

	return func(path string) bool {
		for _, ca := range alts {
			if ca.match(path, flags) {
				return true
			}
		}

		return false
	}
}

// applyMark returns path unchanged, whether or not Mark is set: MatchPaths
// operates on a plain in-memory string list with no filesystem to tell
// directories from files. Appending '/' to directory results is done by
// the walker package, which knows each entry's kind.
func applyMark(path string, flags Flags) string {
	return path
}
