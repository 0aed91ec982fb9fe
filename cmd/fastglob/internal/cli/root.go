package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	glob "github.com/globkit/fastglob"
)

// Execute builds and runs the fastglob command tree.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "fastglob",
		Short:         "Shell-style glob pattern matching and path filtering",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	var pf *pflag.FlagSet = root.PersistentFlags()
	pf.Bool("no-escape", false, "disable backslash escaping")
	pf.Bool("period", false, "let leading wildcards match a leading dot")
	pf.Bool("no-check", false, "return the pattern itself when nothing matches")
	pf.Bool("no-sort", false, "skip the final lexicographic sort")
	pf.Bool("mark", false, "append '/' to directory results")
	pf.Bool("brace", false, "expand {a,b,c} alternatives")
	pf.Bool("tilde", false, "expand a leading ~ or ~user")
	pf.Bool("tilde-check", false, "fail on an unresolvable ~user")
	pf.Bool("only-dir", false, "match directory entries only")
	pf.Bool("extglob", false, "enable ?() *() +() @() !() constructs")
	pf.Bool("doublestar", false, "treat ** as a zero-or-more-segment wildcard")
	pf.Bool("gitignore", false, "apply gitignore-style secondary filtering")
	pf.Bool("case-fold", false, "ASCII case-insensitive matching")

	if err := v.BindPFlags(pf); err != nil {
		panic(err)
	}

	root.AddCommand(newMatchCmd(v))
	root.AddCommand(newPathsCmd(v))
	root.AddCommand(newIgnoreCmd(v))

	return root
}

// flagsFromConfig projects the merged Config onto the engine's Flags type.
func flagsFromConfig(cfg *Config) glob.Flags {
	return glob.Flags{
		NoEscape:            cfg.NoEscape,
		Period:              cfg.Period,
		NoCheck:             cfg.NoCheck,
		NoSort:              cfg.NoSort,
		Mark:                cfg.Mark,
		Brace:               cfg.Brace,
		Tilde:               cfg.Tilde,
		TildeCheck:          cfg.TildeCheck,
		OnlyDir:             cfg.OnlyDir,
		ExtGlob:             cfg.ExtGlob,
		DoublestarRecursive: cfg.DoublestarRecursive,
		GitIgnore:           cfg.GitIgnore,
		CaseFold:            cfg.CaseFold,
	}
}
