package cli

import (
	"github.com/kilupskalvis/mdlevel/internal/core"
	"github.com/spf13/cobra"
)

var increaseCmd = &cobra.Command{
	Use:   "increase [file]",
	Short: "Move headers deeper (add '#' characters)",
	Long: `Increase the nesting level of every header in the document or the
given line range. Headers never pass level 6 and never reach the level
of a nested header, so the hierarchy stays intact.

Reads stdin when no file (or "-") is given and prints the adjusted
document to stdout unless --write is set.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runIncrease,
}

var increaseOpts adjustOptions

func init() {
	addAdjustFlags(increaseCmd, &increaseOpts)
}

func runIncrease(cmd *cobra.Command, args []string) {
	runAdjust(core.Increase, &increaseOpts, args)
}
