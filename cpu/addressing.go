package cpu

import "mos6502/mask"

// An AddressingMode tells the CPU where to find the operand for an
// instruction. There are 13: the two that carry no operand byte (Implied,
// Accumulator) are kept as distinct variants rather than a shared "implied"
// flag, so that address 0 is never confused with "no address".
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator

	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative

	Absolute
	AbsoluteX
	AbsoluteY

	IndirectX // (zp,X), aka indexed indirect
	IndirectY // (zp),Y, aka indirect indexed
	Indirect  // JMP only
)

// decode resolves the operand address for mode, advancing PC past any
// operand bytes. It never touches the operand's value -- instructions read
// or write through Read/Write themselves, since STA/STX/STY never read the
// destination and RMW instructions read-modify-write it explicitly.
//
// c.Cycles gains one extra tick whenever AbsoluteX, AbsoluteY, or IndirectY
// crosses a page boundary; Relative's extra tick (taken branch, and a
// further tick if the branch itself crosses a page) is credited by the
// branch instruction, since it depends on whether the branch is taken.
func (c *CPU) decode(mode AddressingMode) uint16 {
	switch mode {
	case Implied, Accumulator:
		return 0

	case Immediate:
		addr := c.PC
		c.PC++
		return addr

	case ZeroPage:
		addr := uint16(c.Read(c.PC))
		c.PC++
		return addr

	case ZeroPageX:
		addr := uint16(c.Read(c.PC) + c.X)
		c.PC++
		return addr & 0x00ff

	case ZeroPageY:
		addr := uint16(c.Read(c.PC) + c.Y)
		c.PC++
		return addr & 0x00ff

	case Relative:
		rel := c.Read(c.PC)
		c.PC++
		addr := c.PC + uint16(int8(rel))
		return addr

	case Absolute:
		lo := c.Read(c.PC)
		c.PC++
		hi := c.Read(c.PC)
		c.PC++
		return mask.Word(hi, lo)

	case AbsoluteX:
		lo := c.Read(c.PC)
		c.PC++
		hi := c.Read(c.PC)
		c.PC++
		base := mask.Word(hi, lo)
		addr := base + uint16(c.X)
		if addr&0xff00 != uint16(hi)<<8 {
			c.Cycles++
		}
		return addr

	case AbsoluteY:
		lo := c.Read(c.PC)
		c.PC++
		hi := c.Read(c.PC)
		c.PC++
		base := mask.Word(hi, lo)
		addr := base + uint16(c.Y)
		if addr&0xff00 != uint16(hi)<<8 {
			c.Cycles++
		}
		return addr

	case IndirectX:
		ptr := c.Read(c.PC)
		c.PC++
		lo := c.Read(uint16(ptr+c.X) & 0x00ff)
		hi := c.Read(uint16(ptr+c.X+1) & 0x00ff)
		return mask.Word(hi, lo)

	case IndirectY:
		ptr := c.Read(c.PC)
		c.PC++
		lo := c.Read(uint16(ptr) & 0x00ff)
		hi := c.Read(uint16(ptr+1) & 0x00ff)
		base := mask.Word(hi, lo)
		addr := base + uint16(c.Y)
		if addr&0xff00 != uint16(hi)<<8 {
			c.Cycles++
		}
		return addr

	case Indirect:
		lo := c.Read(c.PC)
		c.PC++
		hi := c.Read(c.PC)
		c.PC++
		ptr := mask.Word(hi, lo)

		// the indirect-JMP page-boundary bug: if the pointer's low byte
		// is 0xff, the high byte of the target wraps to the start of
		// the same page instead of crossing into the next one.
		var targetHi byte
		if lo == 0xff {
			targetHi = c.Read(ptr & 0xff00)
		} else {
			targetHi = c.Read(ptr + 1)
		}
		targetLo := c.Read(ptr)
		return mask.Word(targetHi, targetLo)
	}

	return 0
}
