package cmd

import (
	"fmt"
	"os"

	"github.com/bradford-hamilton/chippy/internal/machine"
	"github.com/spf13/cobra"
)

var versionVerbose bool

// versionCmd returns the callers installed chippy version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Retrieve the currently installed chippy version",
	Long:  "Run `chippy version` to get your current chippy version",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func init() {
	versionCmd.Flags().BoolVar(&versionVerbose, "verbose", false, "also print the default CPU/timer frequencies")
}

func runVersion(cmd *cobra.Command, args []string) {
	if len(args) != 0 {
		fmt.Println("The version command does not take any arguments")
		os.Exit(1)
	}
	fmt.Println(currentReleaseVersion)
	if versionVerbose {
		cfg := machine.DefaultConfig()
		fmt.Printf("default cpu: %dHz, default timer: %dHz\n", cfg.CPUFrequencyHz, cfg.TimerFrequencyHz)
	}
}
