package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	glob "github.com/globkit/fastglob"
)

func newPathsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths <pattern> [path...]",
		Short: "Filter a list of paths against a pattern",
		Long: "Filter a list of paths against a pattern. Paths are taken from the\n" +
			"trailing arguments, or read one per line from stdin when none are given.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			pattern := args[0]

			paths := args[1:]
			if len(paths) == 0 {
				paths, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			results, err := glob.MatchPaths(pattern, paths, flagsFromConfig(cfg))
			if err != nil {
				return err
			}

			if len(results) == 0 {
				return errNoMatch
			}

			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}

			return nil
		},
	}

	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
