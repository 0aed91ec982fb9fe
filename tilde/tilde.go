// Package tilde expands a leading "~" or "~user" token in a pattern to the
// corresponding user's home directory, the way an interactive shell does
// before handing the pattern to the glob engine.
package tilde

import (
	"errors"
	"os"
	"os/user"
	"strings"
)

// ErrUnknownUser is returned when a "~user" token names a user that cannot
// be resolved and the caller asked for strict checking.
var ErrUnknownUser = errors.New("tilde: unknown user")

// Expand rewrites a leading "~" or "~name" prefix of pattern to the
// corresponding home directory. A bare "~" (or "~/..." ) resolves to the
// current user's home directory via os.UserHomeDir. A pattern with no
// leading tilde is returned unchanged. When check is true, a "~name" that
// cannot be resolved returns ErrUnknownUser instead of leaving the token
// untouched.
func Expand(pattern string, check bool) (string, error) {
	if !strings.HasPrefix(pattern, "~") {
		return pattern, nil
	}

	rest := pattern[1:]

	slash := strings.IndexByte(rest, '/')

	name := rest
	tail := ""

	if slash >= 0 {
		name = rest[:slash]
		tail = rest[slash:]
	}

	var home string

	if name == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			if check {
				return pattern, ErrUnknownUser
			}

			return pattern, nil
		}

		home = h
	} else {
		u, err := user.Lookup(name)
		if err != nil {
			if check {
				return pattern, ErrUnknownUser
			}

			return pattern, nil
		}

		home = u.HomeDir
	}

	return home + tail, nil
}

// HasLeadingTilde reports whether pattern begins with the tilde token this
// package expands.
func HasLeadingTilde(pattern string) bool {
	return strings.HasPrefix(pattern, "~")
}
