package cli

import (
	"fmt"
	"os"

	"github.com/kilupskalvis/mdlevel/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Write a ` + config.ConfigFile + ` file with default magnitudes to the
current directory. The file is picked up by any mdlevel invocation in
this directory or below it.`,
	Run: runInit,
}

func runInit(cmd *cobra.Command, args []string) {
	cwd, err := os.Getwd()
	if err != nil {
		exitError("%v", err)
	}

	cfg, err := config.Initialize(cwd)
	if err != nil {
		exitError("%v", err)
	}

	fmt.Printf("Created %s\n", cfg.Path())
	fmt.Printf("increase_by = %d\ndecrease_by = %d\n", cfg.IncreaseBy, cfg.DecreaseBy)
}
