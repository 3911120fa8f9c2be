package cli

import (
	"github.com/kilupskalvis/mdlevel/internal/core"
	"github.com/spf13/cobra"
)

var decreaseCmd = &cobra.Command{
	Use:   "decrease [file]",
	Short: "Move headers shallower (remove '#' characters)",
	Long: `Decrease the nesting level of every header in the document or the
given line range. Headers never pass level 1 and never reach the level
of their enclosing header, so the hierarchy stays intact.

Reads stdin when no file (or "-") is given and prints the adjusted
document to stdout unless --write is set.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDecrease,
}

var decreaseOpts adjustOptions

func init() {
	addAdjustFlags(decreaseCmd, &decreaseOpts)
}

func runDecrease(cmd *cobra.Command, args []string) {
	runAdjust(core.Decrease, &decreaseOpts, args)
}
