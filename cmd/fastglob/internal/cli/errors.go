package cli

import "errors"

// errNoMatch is returned by subcommands that found nothing, so the process
// exits non-zero the way grep-family tools do on a miss.
var errNoMatch = errors.New("no match")
