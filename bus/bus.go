// Package bus defines the capability the cpu package needs from whatever
// backs an address space. The CPU owns no memory of its own; it only ever
// talks to a Bus.
package bus

// A Bus is the thing a Cpu is wired to: 16 address lines, 8 data lines, one
// read and one write. Nothing about a Bus is 6502-specific -- it can be
// plain RAM (see mem.RAM), a memory-mapped device tree, or a test double.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, data byte)
}
