package cpu

import "fmt"

// instructionLength returns how many bytes (opcode included) an instruction
// using mode occupies.
func instructionLength(mode AddressingMode) int {
	switch mode {
	case Implied, Accumulator:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 3
	default:
		return 2
	}
}

// DisassembledInstruction is one decoded-but-not-executed instruction, the
// unit cmd/e6502run's --trace flag prints per step.
type DisassembledInstruction struct {
	PC     uint16
	Opcode byte
	Name   string
	Mode   AddressingMode
	Length int
	Raw    []byte // the opcode byte plus its operand bytes, as stored in memory
}

// FetchInstruction reads (without executing) the instruction at pc. It is
// the read-only counterpart to CPU.Step: useful for a disassembler or
// stepper that wants to show what's about to run before it runs.
func (c *CPU) FetchInstruction(pc uint16) DisassembledInstruction {
	opcode := c.Read(pc)
	op := opcodes[opcode]
	length := instructionLength(op.Mode)

	raw := make([]byte, length)
	for i := 0; i < length; i++ {
		raw[i] = c.Read(pc + uint16(i))
	}

	return DisassembledInstruction{
		PC:     pc,
		Opcode: opcode,
		Name:   op.Name,
		Mode:   op.Mode,
		Length: length,
		Raw:    raw,
	}
}

// String renders the instruction the way a trace log wants it: address,
// raw bytes, mnemonic.
func (d DisassembledInstruction) String() string {
	hex := ""
	for _, b := range d.Raw {
		hex += fmt.Sprintf("%02X ", b)
	}
	for len(hex) < 9 {
		hex += "   "
	}
	return fmt.Sprintf("%04X  %s%s", d.PC, hex, d.Name)
}
