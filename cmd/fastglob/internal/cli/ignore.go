package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/globkit/fastglob/gitignore"
)

func newIgnoreCmd(v *viper.Viper) *cobra.Command {
	var isDir bool

	cmd := &cobra.Command{
		Use:   "ignore <gitignore-file> <path>",
		Short: "Evaluate a path against a .gitignore-style file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			gi := gitignore.NewOptions(gitignore.Options{CaseFold: cfg.CaseFold}, splitLines(string(data))...)

			result := gi.Match(args[1], isDir)
			if !result.Ignored {
				return errNoMatch
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", result.Pattern, args[1])

			return nil
		},
	}

	cmd.Flags().BoolVar(&isDir, "dir", false, "treat the path as a directory")

	return cmd
}

func splitLines(s string) []string {
	var lines []string

	start := 0

	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}

	if start < len(s) {
		lines = append(lines, s[start:])
	}

	return lines
}
