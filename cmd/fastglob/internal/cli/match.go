package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	glob "github.com/globkit/fastglob"
)

func newMatchCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <pattern> <candidate>",
		Short: "Test whether a candidate string satisfies a pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			ok := glob.Match(args[0], args[1], flagsFromConfig(cfg))
			if !ok {
				return errNoMatch
			}

			fmt.Fprintln(cmd.OutOrStdout(), "match")

			return nil
		},
	}

	return cmd
}
