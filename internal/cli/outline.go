package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/kilupskalvis/mdlevel/internal/core"
	"github.com/spf13/cobra"
)

var outlineCmd = &cobra.Command{
	Use:   "outline [file]",
	Short: "Show the header hierarchy of a document",
	Long: `Print the headers of the document or the given line range as an
indented tree with line numbers. Nothing is modified.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runOutline,
}

var outlineOpts adjustOptions

func init() {
	outlineCmd.Flags().IntVar(&outlineOpts.from, "from", 1, "First line of the range (1-based, inclusive)")
	outlineCmd.Flags().IntVar(&outlineOpts.to, "to", 0, "Last line of the range (1-based, inclusive, 0 = end of document)")
}

func runOutline(cmd *cobra.Command, args []string) {
	doc, _ := loadInput(args)
	from, to := lineRange(&outlineOpts)

	if to == core.WholeDocument {
		to = doc.LineCount() - 1
		if to < 0 {
			to = 0
		}
	}
	if from > to {
		exitError("%v", core.ErrBadRange)
	}

	forest := core.Parse(doc, from, to)
	if forest.Len() == 0 {
		fmt.Println("No headers found")
		return
	}

	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	for i, h := range forest.Headers {
		yellow.Printf("%4d ", h.Line+1)
		fmt.Print(strings.Repeat("  ", forest.Depth(i)))
		cyan.Printf("%s ", strings.Repeat("#", h.Level))
		fmt.Println(h.Content)
	}
}
