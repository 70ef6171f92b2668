// Package mem provides a flat-RAM implementation of bus.Bus: the simplest
// thing a cpu.CPU can be wired to, no mirroring or mapped devices, the
// whole 64 kB address space backed by one array.
package mem

// RAM is 64 kB of byte-addressable memory beginning at 0x0000. It
// implements bus.Bus with pointer-receiver methods, since a value receiver
// here would silently write through a copy and lose every store.
type RAM struct {
	data [64 * 1024]byte
}

// NewRAM returns a zeroed 64 kB address space.
func NewRAM() *RAM {
	return &RAM{}
}

// Read returns the byte at addr.
func (r *RAM) Read(addr uint16) byte {
	return r.data[addr]
}

// Write stores data at addr.
func (r *RAM) Write(addr uint16, data byte) {
	r.data[addr] = data
}

// LoadAt copies program into RAM starting at addr, panicking if it would
// run past the end of the address space. Used by tests and the CLI host to
// seed a program before the reset vector is read.
func (r *RAM) LoadAt(addr uint16, program []byte) {
	if int(addr)+len(program) > len(r.data) {
		panic("mem: program does not fit in RAM")
	}
	copy(r.data[addr:], program)
}

// SetResetVector writes pc into the 0xfffc/0xfffd reset vector, little
// endian, the same convention cpu.CPU.Reset reads from.
func (r *RAM) SetResetVector(pc uint16) {
	r.data[0xfffc] = byte(pc)
	r.data[0xfffd] = byte(pc >> 8)
}
