// Package walker is the filesystem walker external collaborator: it
// descends a directory tree with afero, filters hidden entries the way the
// core's pattern analysis expects, and calls the supplied matcher on each
// (path, basename, kind) tuple it produces. The core never calls the
// walker; the walker calls match on each entry it visits.
package walker

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	glob "github.com/globkit/fastglob"
)

// Kind classifies a walked entry.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

// HiddenConfig governs whether entries beginning with '.' are visited,
// derived from the pattern's own leading-dot shape and the Period flag:
// a pattern segment that itself starts with '.' always sees hidden
// siblings, regardless of Period.
type HiddenConfig struct {
	// ShowHidden allows a '.'-prefixed entry to be visited at all.
	ShowHidden bool
}

// NewHiddenConfig derives a HiddenConfig for one pattern segment.
func NewHiddenConfig(patternSegment string, period bool) HiddenConfig {
	return HiddenConfig{ShowHidden: period || strings.HasPrefix(patternSegment, ".")}
}

// ErrAbort is returned by an error callback to stop a walk early; any other
// return value, nil included, lets the walk continue past the failed
// directory.
var ErrAbort = errors.New("walker: abort")

// Options configures a walk.
type Options struct {
	Fs afero.Fs

	Flags glob.Flags

	// OnError is invoked when a directory cannot be opened (ReadDir
	// fails). Returning ErrAbort stops the walk; any other value
	// (including nil) skips the failed directory and continues.
	OnError func(path string, err error) error

	// HiddenAt overrides the default Period-only hidden-entry rule with a
	// per-depth HiddenConfig, letting a caller that knows the pattern's own
	// segment shape (WalkGlob) show hidden siblings at the segments that
	// themselves start with '.', regardless of Period. depth is 0 at
	// root's direct children. A nil HiddenAt falls back to Flags.Period
	// for every depth.
	HiddenAt func(depth int) HiddenConfig
}

// Entry is one (path, basename, kind) tuple produced by a walk.
type Entry struct {
	Path     string
	Basename string
	Kind     Kind
}

// Walk descends root, calling visit for every entry not filtered out by
// hidden-file rules or, under Flags.OnlyDir, for not being a directory, in
// lexicographic order within each directory. A nil
// Options.Fs defaults to the OS filesystem.
func Walk(root string, opt Options, visit func(Entry) error) error {
	fsys := opt.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	return walkRecursive(fsys, root, "", 0, opt, visit)
}

func walkRecursive(fsys afero.Fs, root, rel string, depth int, opt Options, visit func(Entry) error) error {
	dir := root
	if rel != "" {
		dir = filepath.Join(root, rel)
	}

	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		if opt.OnError != nil {
			if cbErr := opt.OnError(dir, err); errors.Is(cbErr, ErrAbort) {
				return cbErr
			}

			return nil
		}

		return err
	}

	names := make([]string, 0, len(entries))
	byName := make(map[string]fs.FileInfo, len(entries))

	for _, e := range entries {
		names = append(names, e.Name())
		byName[e.Name()] = e
	}

	sort.Strings(names)

	for _, name := range names {
		info := byName[name]

		if strings.HasPrefix(name, ".") && !hiddenAllowed(depth, opt) {
			continue
		}

		entryRel := name
		if rel != "" {
			entryRel = filepath.Join(rel, name)
		}

		kind := KindFile
		if info.IsDir() {
			kind = KindDir
		}

		if opt.Flags.OnlyDir && kind != KindDir {
			continue
		}

		if err := visit(Entry{Path: filepath.ToSlash(entryRel), Basename: name, Kind: kind}); err != nil {
			return err
		}

		if info.IsDir() {
			if err := walkRecursive(fsys, root, entryRel, depth+1, opt, visit); err != nil {
				return err
			}
		}
	}

	return nil
}

func hiddenAllowed(depth int, opt Options) bool {
	if opt.HiddenAt != nil {
		return opt.HiddenAt(depth).ShowHidden
	}

	return opt.Flags.Period
}

// WalkGlob combines Walk with pattern matching: it returns every entry
// under root whose slash-joined relative path satisfies pattern, as decided
// by glob.MatchGlobSimple ("**" recursion only when
// Flags.DoublestarRecursive is set).
func WalkGlob(root, pattern string, opt Options) ([]string, error) {
	var results []string

	segs := strings.Split(pattern, "/")
	if opt.HiddenAt == nil {
		opt.HiddenAt = func(depth int) HiddenConfig {
			seg := segs[len(segs)-1]
			if depth < len(segs) {
				seg = segs[depth]
			}

			return NewHiddenConfig(seg, opt.Flags.Period)
		}
	}

	err := Walk(root, opt, func(e Entry) error {
		if glob.MatchGlobSimple(pattern, e.Path, opt.Flags.DoublestarRecursive) {
			path := e.Path
			if opt.Flags.Mark && e.Kind == KindDir {
				path += "/"
			}

			results = append(results, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(results) == 0 && opt.Flags.NoCheck {
		return []string{pattern}, nil
	}

	if !opt.Flags.NoSort {
		sort.Strings(results)
	}

	return results, nil
}
