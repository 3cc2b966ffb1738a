package cmd

import (
	"fmt"
	"os"

	"github.com/bradford-hamilton/chippy/internal/machine"
	"github.com/bradford-hamilton/chippy/internal/platform"
	"github.com/bradford-hamilton/chippy/internal/rom"
	"github.com/spf13/cobra"
)

var (
	cpuFrequency     uint16
	timerFrequency   uint16
	quirkShift       bool
	quirkJumpVX      bool
	quirkIncrementLS bool
	quirkKeyEdge     bool
	quirkWrap        bool
)

// runCmd runs the chippy virtual machine against a ROM and waits for
// the window to close.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the chippy emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runChippy,
}

func init() {
	runCmd.Flags().Uint16Var(&cpuFrequency, "cpu-hz", machine.DefaultConfig().CPUFrequencyHz, "instructions retired per second while running")
	runCmd.Flags().Uint16Var(&timerFrequency, "timer-hz", machine.DefaultConfig().TimerFrequencyHz, "delay/sound timer decrement frequency")
	runCmd.Flags().BoolVar(&quirkShift, "quirk-shift", false, "8XY6/8XYE shift VX in place instead of reading VY")
	runCmd.Flags().BoolVar(&quirkJumpVX, "quirk-jump-vx", false, "BNNN uses VX instead of V0 as the jump offset base")
	runCmd.Flags().BoolVar(&quirkIncrementLS, "quirk-increment-index", false, "FX55/FX65 advance I by X+1 afterwards")
	runCmd.Flags().BoolVar(&quirkKeyEdge, "quirk-key-edge", false, "FX0A completes only on a fresh keypress")
	runCmd.Flags().BoolVar(&quirkWrap, "quirk-wrap", false, "DXYN wraps the initial draw coordinate instead of clipping it")
}

func runChippy(cmd *cobra.Command, args []string) {
	pathToROM := args[0]

	words, err := rom.Load(pathToROM)
	if err != nil {
		fmt.Printf("\nerror loading ROM: %v\n", err)
		os.Exit(1)
	}

	vm := machine.NewMachine().WithConfig(machine.Config{
		CPUFrequencyHz:   cpuFrequency,
		TimerFrequencyHz: timerFrequency,
		Quirks: machine.Quirks{
			Shift:                     quirkShift,
			JumpOffsetUsesVX:          quirkJumpVX,
			IncrementIndexOnLoadStore: quirkIncrementLS,
			KeyWaitEdgeTrigger:        quirkKeyEdge,
			WrapCoordinates:           quirkWrap,
		},
	})
	if err := vm.LoadProgram(words); err != nil {
		fmt.Printf("\nerror loading program into memory: %v\n", err)
		os.Exit(1)
	}

	host, err := platform.NewHost()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer host.Close()

	for {
		if err := vm.RunFrame(host); err != nil {
			fmt.Printf("error running frame: %v\n", err)
			os.Exit(1)
		}
		if host.Window.Closed() {
			fmt.Println("exit signal detected, gracefully shutting down...")
			return
		}
	}
}
