// Package config parses cmd/pathwalk's command-line flags into a Config,
// the way the teacher's internal/config.New builds its Config from a flag
// set, using cobra/pflag in place of the standard flag package.
package config

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Config holds one invocation's settings, one field per walker option plus
// the ambient output/logging settings.
type Config struct {
	Root        string
	Include     []string
	NoIgnore    bool
	Hidden      bool
	FollowLinks bool
	MaxDepth    int
	JSON        bool
	Stats       bool
	LogLevel    string
	NoColor     bool
	UseColors   bool
}

// New builds the pathwalk root command, registers its flags against a
// fresh Config, and executes it. run is called once with the fully parsed
// Config; New returns whatever error cobra's Execute produced (already
// printed to stderr by cobra itself).
func New(run func(*Config) error) error {
	cfg := &Config{LogLevel: "info", MaxDepth: -1}

	root := &cobra.Command{
		Use:   "pathwalk [root]",
		Short: "Pattern-matched, gitignore-aware filesystem traversal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg.Root = "."
			if len(args) == 1 {
				cfg.Root = args[0]
			}
			cfg.UseColors = !cfg.NoColor && isatty.IsTerminal(os.Stderr.Fd())
			return run(cfg)
		},
	}

	flags := root.Flags()
	flags.StringSliceVarP(&cfg.Include, "include", "i", nil, "include glob pattern (repeatable, gitignore syntax)")
	flags.BoolVar(&cfg.NoIgnore, "no-ignore", false, "do not honour .gitignore/.git/info/exclude/global excludes")
	flags.BoolVar(&cfg.Hidden, "hidden", false, "include hidden files and directories")
	flags.BoolVar(&cfg.FollowLinks, "follow-links", false, "descend into directories reached through a symlink")
	flags.IntVar(&cfg.MaxDepth, "max-depth", -1, "maximum descent depth, -1 for unbounded")
	flags.BoolVar(&cfg.JSON, "json", false, "print matched paths as a JSON array")
	flags.BoolVar(&cfg.Stats, "stats", false, "print a summary table to stderr after the walk")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "debug|info|warn|error|none")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "disable colored log output")

	return root.Execute()
}
