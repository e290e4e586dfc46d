package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/scopedpath/pkg/scopedpath"
)

func newSweepCommand() *cobra.Command {
	var (
		strict   bool
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "sweep [path ...]",
		Short: "Remove the given paths, best-effort",
		Long: `Remove each path, recursively for directories. Nested paths are removed
before the paths containing them. Entries that do not exist are skipped.
Without --strict, failures are logged and the exit code stays zero.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := scopedpath.LogLevelFromString(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			scopedpath.SetLogger(scopedpath.NewLogger(os.Stderr, level))

			sweeper := scopedpath.NewSweeper()
			for _, arg := range args {
				sweeper.Track(arg)
			}

			if strict {
				return sweeper.Sweep()
			}
			return sweeper.Close()
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when a removal fails")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")

	return cmd
}
