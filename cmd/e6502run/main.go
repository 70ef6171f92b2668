// Command e6502run loads a raw 6502 program at $0200 and runs it to
// completion (a BRK), the same convention as the reference sandbox host.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mos6502/cpu"
	"mos6502/mem"
)

const (
	loadAddr    = 0x0200
	minHeadroom = 0x0200 // same margin the reference sandbox host requires
)

func main() {
	var trace bool
	var interactive bool

	root := &cobra.Command{
		Use:   "e6502run [program]",
		Short: "Run a 6502 binary image starting at $0200",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], trace, interactive)
		},
	}
	root.Flags().BoolVarP(&trace, "trace", "t", false, "print each instruction before it executes")
	root.Flags().BoolVarP(&interactive, "interactive", "i", false, "launch the interactive stepper instead of running to completion")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string, trace, interactive bool) error {
	program, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("e6502run: %w", err)
	}
	if 0xfff0-len(program) < minHeadroom {
		return fmt.Errorf("e6502run: program too large to fit before the vector table")
	}

	ram := mem.NewRAM()
	ram.LoadAt(loadAddr, program)
	ram.SetResetVector(loadAddr)

	c, err := cpu.Init(ram)
	if err != nil {
		return fmt.Errorf("e6502run: %w", err)
	}

	if interactive {
		return cpu.RunStepper(c)
	}

	for {
		pc := c.PC
		if trace {
			fmt.Println(c.FetchInstruction(pc).String())
		}
		opcode := c.Step()
		if opcode == 0x00 {
			break
		}
	}

	fmt.Printf("A:%02x X:%02x Y:%02x S:%02x P:%02x PC:%04x\n", c.A, c.X, c.Y, c.S, c.P, c.PC)
	return nil
}
