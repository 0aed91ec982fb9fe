package glob

import (
	"strings"

	"github.com/globkit/fastglob/brace"
	"github.com/globkit/fastglob/tilde"
)

// preprocessPattern applies the leading "./" strip, then the tilde- and
// brace-expansion preprocessing steps, in that order, before the pattern
// reaches the segment matcher. Tilde expansion runs before brace
// expansion, so brace groups inside a resolved home directory are
// expanded as well.
func preprocessPattern(pattern string, flags Flags) ([]string, error) {
	pattern = strings.TrimPrefix(pattern, "./")

	if flags.Tilde && tilde.HasLeadingTilde(pattern) {
		expanded, err := tilde.Expand(pattern, flags.TildeCheck)
		if err != nil {
			return nil, ErrUnknownUser
		}

		pattern = expanded
	}

	if flags.Brace && brace.HasAlternatives(pattern) {
		alts, err := brace.Expand(pattern)
		if err != nil {
			return alts, ErrTooManyAlternatives
		}

		return alts, nil
	}

	return []string{pattern}, nil
}
