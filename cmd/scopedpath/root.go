package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build information, set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scopedpath",
	Short: "Best-effort removal of files and directory trees",
	Long: `scopedpath removes filesystem entries the way the scopedpath library does
at scope exit: directories go recursively, entries that are already gone are
fine, and failures are logged rather than fatal unless told otherwise.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newSweepCommand())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Print the version number of scopedpath`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scopedpath version %s (commit: %s, built: %s)\n", version, commit, date)
	},
}
