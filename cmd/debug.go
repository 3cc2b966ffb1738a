package cmd

import (
	"fmt"
	"os"

	"github.com/bradford-hamilton/chippy/internal/machine"
	"github.com/bradford-hamilton/chippy/internal/rom"
	"github.com/spf13/cobra"
)

var debugSteps int

// debugCmd loads a ROM, single-steps it headlessly, and prints the
// register, memory, and screen dumps. It never opens a window — useful
// for inspecting a ROM's early behavior without a display.
var debugCmd = &cobra.Command{
	Use:   "debug `path/to/rom`",
	Short: "step a rom and print register/memory/screen dumps",
	Args:  cobra.ExactArgs(1),
	Run:   runDebug,
}

func init() {
	debugCmd.Flags().IntVar(&debugSteps, "steps", 1, "number of instructions to execute before dumping state")
}

func runDebug(cmd *cobra.Command, args []string) {
	pathToROM := args[0]

	words, err := rom.Load(pathToROM)
	if err != nil {
		fmt.Printf("\nerror loading ROM: %v\n", err)
		os.Exit(1)
	}

	vm := machine.NewMachine()
	if err := vm.LoadProgram(words); err != nil {
		fmt.Printf("\nerror loading program into memory: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < debugSteps; i++ {
		if err := vm.Step(); err != nil {
			fmt.Printf("stopped after %d step(s): %v\n\n", i, err)
			break
		}
	}

	fmt.Print(vm.DumpRegisters())
	fmt.Println()
	fmt.Print(vm.DumpMemoryHex(machine.ProgramStart, 64))
	fmt.Println()
	fmt.Print(vm.DumpScreen())
}
