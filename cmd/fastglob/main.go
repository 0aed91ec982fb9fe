// Command fastglob exposes the glob engine as a CLI: test a single pattern
// against a candidate, filter a list of paths, or evaluate a gitignore file
// against a path.
package main

import (
	"fmt"
	"os"

	"github.com/globkit/fastglob/cmd/fastglob/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
