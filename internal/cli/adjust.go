package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/kilupskalvis/mdlevel/internal/config"
	"github.com/kilupskalvis/mdlevel/internal/core"
	"github.com/kilupskalvis/mdlevel/internal/document"
	"github.com/spf13/cobra"
)

// adjustOptions holds the flags shared by increase and decrease.
type adjustOptions struct {
	by    int
	from  int
	to    int
	write bool
}

func addAdjustFlags(cmd *cobra.Command, opts *adjustOptions) {
	cmd.Flags().IntVarP(&opts.by, "by", "n", 0, "Levels to shift (0 = use the configured default)")
	cmd.Flags().IntVar(&opts.from, "from", 1, "First line of the range (1-based, inclusive)")
	cmd.Flags().IntVar(&opts.to, "to", 0, "Last line of the range (1-based, inclusive, 0 = end of document)")
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Rewrite the file in place instead of printing to stdout")
}

// loadInput reads the document named by args, or stdin when no file
// (or "-") is given. The returned path is empty for stdin.
func loadInput(args []string) (*document.Document, string) {
	path := ""
	if len(args) > 0 && args[0] != "-" {
		path = args[0]
	}

	if path == "" {
		doc, err := document.Read(os.Stdin)
		if err != nil {
			exitError("%v", err)
		}
		return doc, ""
	}

	doc, err := document.ReadFile(path)
	if err != nil {
		exitError("%v", err)
	}
	return doc, path
}

// lineRange converts the 1-based CLI flags into the core's zero-based
// inclusive bounds.
func lineRange(opts *adjustOptions) (int, int) {
	if opts.from < 1 {
		exitError("--from must be at least 1, got %d", opts.from)
	}
	from := opts.from - 1

	to := core.WholeDocument
	if opts.to != 0 {
		if opts.to < 1 {
			exitError("--to must be at least 1, got %d", opts.to)
		}
		to = opts.to - 1
	}
	return from, to
}

func runAdjust(op core.Op, opts *adjustOptions, args []string) {
	cfg, err := config.Load()
	if err != nil {
		exitError("%v", err)
	}

	by := opts.by
	if by == 0 {
		if op == core.Increase {
			by = cfg.IncreaseBy
		} else {
			by = cfg.DecreaseBy
		}
	}

	doc, path := loadInput(args)
	if opts.write && path == "" {
		exitError("--write requires a file argument")
	}
	from, to := lineRange(opts)

	res, err := core.Run(doc, op, by, from, to)
	if err != nil {
		if errors.Is(err, core.ErrNoHeaders) {
			// Not an error for a filter: pass the document through.
			if !opts.write {
				fmt.Print(doc.String())
			}
			fmt.Fprintln(os.Stderr, "No headers found in the given range")
			return
		}
		exitError("%v", err)
	}

	if opts.write {
		if res.HeadersChanged > 0 {
			if err := doc.WriteFile(path); err != nil {
				exitError("%v", err)
			}
		}
		reportAdjust(os.Stdout, op, res)
		return
	}

	fmt.Print(doc.String())
	reportAdjust(os.Stderr, op, res)
}

func reportAdjust(w io.Writer, op core.Op, res *core.Result) {
	if res.HeadersChanged == 0 {
		fmt.Fprintf(w, "Headers already at their target level (%d found)\n", res.HeadersFound)
		return
	}
	green := color.New(color.FgGreen)
	green.Fprintf(w, "%sd %d of %d header(s)\n", op, res.HeadersChanged, res.HeadersFound)
}
