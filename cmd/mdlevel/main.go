// Command mdlevel adjusts the nesting level of ATX Markdown headers.
package main

import (
	"os"

	"github.com/kilupskalvis/mdlevel/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
