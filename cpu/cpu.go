// Package cpu implements the MOS Technology 6502 microprocessor: the
// decoder, its 13 addressing modes, the documented instruction set, flag
// semantics, and the stack/interrupt plumbing around them.
//
// The CPU has no memory of its own, aside from its registers. It talks to
// whatever backs the address space through a bus.Bus.
package cpu

import (
	"errors"

	"mos6502/bus"
	"mos6502/mask"
)

// interrupt records a latched, not-yet-serviced interrupt request. Unlike
// real hardware, which samples NMI/IRQ lines continuously, Step only checks
// this latch at instruction boundaries -- simpler to reason about, and
// sufficient for anything that isn't cycle-accurate peripheral timing,
// which is explicitly out of scope.
type interrupt int

const (
	interruptNone interrupt = iota
	interruptNMI
	interruptIRQ
)

const (
	vectorNMI   uint16 = 0xfffa
	vectorReset uint16 = 0xfffc
	vectorIRQ   uint16 = 0xfffe
)

// ErrNilBus is returned by Init when no Bus is supplied; a CPU cannot
// function without one.
var ErrNilBus = errors.New("cpu: nil bus")

// A CPU is one 6502 core: the six architectural registers plus the bus it
// is wired to, an interrupt latch checked at instruction boundaries, and a
// running cycle counter.
type CPU struct {
	A byte // accumulator
	X byte
	Y byte
	S byte // stack pointer, always an offset into page 1 (0x0100-0x01ff)
	P byte // processor status; see Flag
	PC uint16

	Bus bus.Bus

	interrupt interrupt

	// Cycles counts elapsed clock cycles: the opcode's base cost plus one
	// for every page boundary an addressing mode crossed, and one more
	// for a taken branch (two if the branch itself crosses a page). It
	// never affects instruction semantics; callers that don't care about
	// timing can ignore it entirely.
	Cycles uint64
}

// Init wires cpu to b and performs the same register setup as Reset. An
// error is returned (never a panic) if b is nil.
func Init(b bus.Bus) (*CPU, error) {
	if b == nil {
		return nil, ErrNilBus
	}
	c := &CPU{Bus: b}
	c.Reset()
	return c, nil
}

// Read reads one byte from the bus.
func (c *CPU) Read(addr uint16) byte {
	return c.Bus.Read(addr)
}

// Write writes one byte to the bus.
func (c *CPU) Write(addr uint16, data byte) {
	c.Bus.Write(addr, data)
}

// Reset puts the CPU in its power-on state: A, X, Y cleared, S at 0xfd, P
// at 0x24 (Unused and Interrupt-disable set, everything else clear), and PC
// loaded from the reset vector at 0xfffc/0xfffd.
func (c *CPU) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.S = 0xfd
	c.P = 0x24
	c.interrupt = interruptNone
	c.PC = c.readVector(vectorReset)
}

// TriggerNMI latches a non-maskable interrupt, serviced at the start of the
// next Step. NMI cannot be disabled by FlagInterrupt and is never dropped
// in favor of a pending IRQ.
func (c *CPU) TriggerNMI() {
	c.interrupt = interruptNMI
}

// TriggerIRQ latches a maskable interrupt request, serviced at the start of
// the next Step unless FlagInterrupt is set (or an NMI is already latched).
func (c *CPU) TriggerIRQ() {
	if c.interrupt == interruptNone {
		c.interrupt = interruptIRQ
	}
}

// Step services a latched interrupt if one is pending and allowed,
// otherwise fetches, decodes, and executes exactly one instruction. It
// never fails: every one of the 256 possible opcode bytes has a defined
// effect (a real instruction, or a byte-length correct no-op for
// undocumented opcodes). Servicing an interrupt consumes the whole Step
// call on its own -- no instruction is fetched in the same call -- and
// returns 0x00, since no opcode byte was read from the program.
func (c *CPU) Step() byte {
	if c.interrupt == interruptNMI {
		c.serviceInterrupt(vectorNMI, 7)
		c.interrupt = interruptNone
		return 0x00
	}
	if c.interrupt == interruptIRQ && !c.GetFlag(FlagInterrupt) {
		c.serviceInterrupt(vectorIRQ, 7)
		c.interrupt = interruptNone
		return 0x00
	}

	opcode := c.Read(c.PC)
	c.PC++
	c.SetFlag(FlagUnused, true)

	op := opcodes[opcode]
	addr := c.decode(op.Mode)
	op.Run(c, addr, op.Mode)

	c.Cycles += uint64(op.Cycles)
	return opcode
}

// serviceInterrupt pushes PC and P (with Break clear) and jumps through the
// given vector. BRK follows the same order through the IRQ/BRK vector, but
// skips its padding byte first and pushes P with Break set.
func (c *CPU) serviceInterrupt(vector uint16, cycles byte) {
	c.push16(c.PC)
	c.SetFlag(FlagBreak, false)
	c.SetFlag(FlagUnused, true)
	c.push8(c.P)
	c.SetFlag(FlagInterrupt, true)
	c.PC = c.readVector(vector)
	c.Cycles += uint64(cycles)
}

func (c *CPU) readVector(addr uint16) uint16 {
	lo := c.Read(addr)
	hi := c.Read(addr + 1)
	return mask.Word(hi, lo)
}
