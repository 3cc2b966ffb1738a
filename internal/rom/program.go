package rom

import (
	"fmt"
	"strings"

	"github.com/bradford-hamilton/chippy/internal/machine"
)

// Program is a sequence of instructions, useful for assembling tiny
// test ROMs from Instruction values instead of raw hex, and for
// disassembling loaded words back to text.
type Program []machine.Instruction

// Words encodes every instruction into the big-endian word sequence
// Machine.LoadProgram expects.
func (p Program) Words() []uint16 {
	words := make([]uint16, len(p))
	for i, inst := range p {
		words[i] = machine.Encode(inst)
	}
	return words
}

// Dump renders the program as an address/opcode disassembly listing,
// one "0xADDR:\t0xOPCODE" line per instruction, starting at
// machine.ProgramStart.
func (p Program) Dump() string {
	var b strings.Builder
	for i, inst := range p {
		addr := machine.ProgramStart + uint16(i)*2
		fmt.Fprintf(&b, "0x%04X:\t0x%04X\n", addr, machine.Encode(inst))
	}
	return b.String()
}

// Disassemble decodes a sequence of loaded words back into a Program,
// for ROM inspection. It stops at the first word that fails to decode
// and returns the decoded prefix alongside that error.
func Disassemble(words []uint16) (Program, error) {
	prog := make(Program, 0, len(words))
	for _, w := range words {
		inst, err := machine.Decode(w)
		if err != nil {
			return prog, err
		}
		prog = append(prog, inst)
	}
	return prog, nil
}
