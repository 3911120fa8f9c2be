// Package cli implements the command-line interface for mdlevel.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mdlevel",
	Short: "Markdown header level adjuster",
	Long: `mdlevel renumbers ATX Markdown headers (lines starting with 1-6 '#'
characters), shifting them up or down while keeping every header
strictly deeper than its enclosing header. Adjustments can cover the
whole document or a line range, read files or stdin, and print the
result or rewrite the file in place.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(increaseCmd)
	rootCmd.AddCommand(decreaseCmd)
	rootCmd.AddCommand(outlineCmd)
	rootCmd.AddCommand(initCmd)
}

// exitError prints an error and exits
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
