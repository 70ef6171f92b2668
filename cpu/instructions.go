package cpu

// Instruction implementations. Signature and semantics are grounded in the
// reference C implementation's op_* functions: an instruction is handed the
// address its AddressingMode already resolved (0 for Implied/Accumulator)
// and decides for itself whether to read memory or a register.
//
// https://www.nesdev.org/obelisk-6502-guide/reference.html

// operand returns the byte an instruction should act on: the accumulator
// for Accumulator mode, otherwise whatever decode resolved addr to.
func (c *CPU) operand(addr uint16, mode AddressingMode) byte {
	if mode == Accumulator {
		return c.A
	}
	return c.Read(addr)
}

// storeOperand writes back the result of a read-modify-write
// shift or rotate (ASL, LSR, ROL, ROR) to wherever operand read it from.
// INC and DEC only ever address memory and write through Write directly.
func (c *CPU) storeOperand(addr uint16, mode AddressingMode, v byte) {
	if mode == Accumulator {
		c.A = v
	} else {
		c.Write(addr, v)
	}
}

// ADC - Add with Carry
func (c *CPU) ADC(addr uint16, mode AddressingMode) {
	a := uint16(c.A)
	b := uint16(c.Read(addr))
	carry := uint16(0)
	if c.GetFlag(FlagCarry) {
		carry = 1
	}
	d := a + b + carry

	c.SetFlag(FlagCarry, d > 0x00ff)
	c.SetFlag(FlagZero, d&0x00ff == 0)
	c.SetFlag(FlagOverflow, ^(a^b)&(a^d)&0x0080 != 0)
	c.SetFlag(FlagNegative, d&0x0080 != 0)
	c.A = byte(d)
}

// AND - Logical AND
func (c *CPU) AND(addr uint16, mode AddressingMode) {
	c.A &= c.Read(addr)
	c.setZN(c.A)
}

// ASL - Arithmetic Shift Left
func (c *CPU) ASL(addr uint16, mode AddressingMode) {
	v := c.operand(addr, mode)
	c.SetFlag(FlagCarry, v&0x80 != 0)
	v <<= 1
	c.setZN(v)
	c.storeOperand(addr, mode, v)
}

func (c *CPU) branch(addr uint16, taken bool) {
	if !taken {
		return
	}
	if addr&0xff00 != c.PC&0xff00 {
		c.Cycles++
	}
	c.Cycles++
	c.PC = addr
}

// BCC - Branch if Carry Clear
func (c *CPU) BCC(addr uint16, mode AddressingMode) { c.branch(addr, !c.GetFlag(FlagCarry)) }

// BCS - Branch if Carry Set
func (c *CPU) BCS(addr uint16, mode AddressingMode) { c.branch(addr, c.GetFlag(FlagCarry)) }

// BEQ - Branch if Equal
func (c *CPU) BEQ(addr uint16, mode AddressingMode) { c.branch(addr, c.GetFlag(FlagZero)) }

// BIT - Bit Test
func (c *CPU) BIT(addr uint16, mode AddressingMode) {
	v := c.Read(addr)
	c.SetFlag(FlagZero, v&c.A == 0)
	c.SetFlag(FlagOverflow, v&0x40 != 0)
	c.SetFlag(FlagNegative, v&0x80 != 0)
}

// BMI - Branch if Minus
func (c *CPU) BMI(addr uint16, mode AddressingMode) { c.branch(addr, c.GetFlag(FlagNegative)) }

// BNE - Branch if Not Equal
func (c *CPU) BNE(addr uint16, mode AddressingMode) { c.branch(addr, !c.GetFlag(FlagZero)) }

// BPL - Branch if Positive
func (c *CPU) BPL(addr uint16, mode AddressingMode) { c.branch(addr, !c.GetFlag(FlagNegative)) }

// BRK - Force Interrupt
//
// BRK is a 2-byte instruction: the byte after the opcode is a padding/signature
// byte that's skipped, not read.
func (c *CPU) BRK(addr uint16, mode AddressingMode) {
	c.PC++
	c.push16(c.PC)
	c.SetFlag(FlagBreak, true)
	c.push8(c.P)
	c.SetFlag(FlagBreak, false)
	c.SetFlag(FlagInterrupt, true)
	c.PC = c.readVector(vectorIRQ)
}

// BVC - Branch if Overflow Clear
func (c *CPU) BVC(addr uint16, mode AddressingMode) { c.branch(addr, !c.GetFlag(FlagOverflow)) }

// BVS - Branch if Overflow Set
func (c *CPU) BVS(addr uint16, mode AddressingMode) { c.branch(addr, c.GetFlag(FlagOverflow)) }

// CLC - Clear Carry Flag
func (c *CPU) CLC(addr uint16, mode AddressingMode) { c.SetFlag(FlagCarry, false) }

// CLD - Clear Decimal Mode
func (c *CPU) CLD(addr uint16, mode AddressingMode) { c.SetFlag(FlagDecimal, false) }

// CLI - Clear Interrupt Disable
func (c *CPU) CLI(addr uint16, mode AddressingMode) { c.SetFlag(FlagInterrupt, false) }

// CLV - Clear Overflow Flag
func (c *CPU) CLV(addr uint16, mode AddressingMode) { c.SetFlag(FlagOverflow, false) }

func (c *CPU) compare(reg byte, m byte) {
	c.SetFlag(FlagCarry, reg >= m)
	c.SetFlag(FlagZero, reg == m)
	c.SetFlag(FlagNegative, (reg-m)&0x80 != 0)
}

// CMP - Compare
func (c *CPU) CMP(addr uint16, mode AddressingMode) { c.compare(c.A, c.Read(addr)) }

// CPX - Compare X Register
func (c *CPU) CPX(addr uint16, mode AddressingMode) { c.compare(c.X, c.Read(addr)) }

// CPY - Compare Y Register
func (c *CPU) CPY(addr uint16, mode AddressingMode) { c.compare(c.Y, c.Read(addr)) }

// DEC - Decrement Memory
func (c *CPU) DEC(addr uint16, mode AddressingMode) {
	v := c.Read(addr) - 1
	c.setZN(v)
	c.Write(addr, v)
}

// DEX - Decrement X Register
func (c *CPU) DEX(addr uint16, mode AddressingMode) {
	c.X--
	c.setZN(c.X)
}

// DEY - Decrement Y Register
func (c *CPU) DEY(addr uint16, mode AddressingMode) {
	c.Y--
	c.setZN(c.Y)
}

// EOR - Exclusive OR
func (c *CPU) EOR(addr uint16, mode AddressingMode) {
	c.A ^= c.Read(addr)
	c.setZN(c.A)
}

// INC - Increment Memory
func (c *CPU) INC(addr uint16, mode AddressingMode) {
	v := c.Read(addr) + 1
	c.setZN(v)
	c.Write(addr, v)
}

// INX - Increment X Register
func (c *CPU) INX(addr uint16, mode AddressingMode) {
	c.X++
	c.setZN(c.X)
}

// INY - Increment Y Register
func (c *CPU) INY(addr uint16, mode AddressingMode) {
	c.Y++
	c.setZN(c.Y)
}

// JMP - Jump
func (c *CPU) JMP(addr uint16, mode AddressingMode) { c.PC = addr }

// JSR - Jump to Subroutine
func (c *CPU) JSR(addr uint16, mode AddressingMode) {
	c.push16(c.PC - 1)
	c.PC = addr
}

// LDA - Load Accumulator
func (c *CPU) LDA(addr uint16, mode AddressingMode) {
	c.A = c.Read(addr)
	c.setZN(c.A)
}

// LDX - Load X Register
func (c *CPU) LDX(addr uint16, mode AddressingMode) {
	c.X = c.Read(addr)
	c.setZN(c.X)
}

// LDY - Load Y Register
func (c *CPU) LDY(addr uint16, mode AddressingMode) {
	c.Y = c.Read(addr)
	c.setZN(c.Y)
}

// LSR - Logical Shift Right
func (c *CPU) LSR(addr uint16, mode AddressingMode) {
	v := c.operand(addr, mode)
	c.SetFlag(FlagCarry, v&0x01 != 0)
	v >>= 1
	c.setZN(v)
	c.storeOperand(addr, mode, v)
}

// NOP - No Operation
func (c *CPU) NOP(addr uint16, mode AddressingMode) {}

// ORA - Logical Inclusive OR
func (c *CPU) ORA(addr uint16, mode AddressingMode) {
	c.A |= c.Read(addr)
	c.setZN(c.A)
}

// PHA - Push Accumulator
func (c *CPU) PHA(addr uint16, mode AddressingMode) { c.push8(c.A) }

// PHP - Push Processor Status
//
// The pushed copy always has Break and Unused set; the live P is never
// permanently altered by PHP (Step re-asserts Unused before every
// instruction regardless).
func (c *CPU) PHP(addr uint16, mode AddressingMode) {
	c.push8(c.P | byte(FlagBreak) | byte(FlagUnused))
}

// PLA - Pull Accumulator
func (c *CPU) PLA(addr uint16, mode AddressingMode) {
	c.A = c.pull8()
	c.setZN(c.A)
}

// PLP - Pull Processor Status
//
// Break never lives in P outside of a stack-pushed copy; pulling one back
// in discards it.
func (c *CPU) PLP(addr uint16, mode AddressingMode) {
	c.P = c.pull8()
	c.SetFlag(FlagBreak, false)
	c.SetFlag(FlagUnused, true)
}

// ROL - Rotate Left
func (c *CPU) ROL(addr uint16, mode AddressingMode) {
	v := c.operand(addr, mode)
	carryIn := byte(0)
	if c.GetFlag(FlagCarry) {
		carryIn = 1
	}
	c.SetFlag(FlagCarry, v&0x80 != 0)
	v = v<<1 | carryIn
	c.setZN(v)
	c.storeOperand(addr, mode, v)
}

// ROR - Rotate Right
func (c *CPU) ROR(addr uint16, mode AddressingMode) {
	v := c.operand(addr, mode)
	carryIn := byte(0)
	if c.GetFlag(FlagCarry) {
		carryIn = 0x80
	}
	c.SetFlag(FlagCarry, v&0x01 != 0)
	v = v>>1 | carryIn
	c.setZN(v)
	c.storeOperand(addr, mode, v)
}

// RTI - Return from Interrupt
func (c *CPU) RTI(addr uint16, mode AddressingMode) {
	c.P = c.pull8()
	c.SetFlag(FlagBreak, false)
	c.SetFlag(FlagUnused, true)
	c.PC = c.pull16()
}

// RTS - Return from Subroutine
func (c *CPU) RTS(addr uint16, mode AddressingMode) {
	c.PC = c.pull16() + 1
}

// SBC - Subtract with Carry
func (c *CPU) SBC(addr uint16, mode AddressingMode) {
	a := uint16(c.A)
	b := uint16(c.Read(addr))
	comp := b ^ 0x00ff
	carry := uint16(0)
	if c.GetFlag(FlagCarry) {
		carry = 1
	}
	e := a + comp + carry

	c.SetFlag(FlagCarry, e&0xff00 != 0)
	c.SetFlag(FlagZero, e&0x00ff == 0)
	c.SetFlag(FlagOverflow, ^(a^comp)&(a^e)&0x0080 != 0)
	c.SetFlag(FlagNegative, e&0x0080 != 0)
	c.A = byte(e)
}

// SEC - Set Carry Flag
func (c *CPU) SEC(addr uint16, mode AddressingMode) { c.SetFlag(FlagCarry, true) }

// SED - Set Decimal Flag
func (c *CPU) SED(addr uint16, mode AddressingMode) { c.SetFlag(FlagDecimal, true) }

// SEI - Set Interrupt Disable
func (c *CPU) SEI(addr uint16, mode AddressingMode) { c.SetFlag(FlagInterrupt, true) }

// STA - Store Accumulator
func (c *CPU) STA(addr uint16, mode AddressingMode) { c.Write(addr, c.A) }

// STX - Store X Register
func (c *CPU) STX(addr uint16, mode AddressingMode) { c.Write(addr, c.X) }

// STY - Store Y Register
func (c *CPU) STY(addr uint16, mode AddressingMode) { c.Write(addr, c.Y) }

// TAX - Transfer Accumulator to X
func (c *CPU) TAX(addr uint16, mode AddressingMode) {
	c.X = c.A
	c.setZN(c.X)
}

// TAY - Transfer Accumulator to Y
func (c *CPU) TAY(addr uint16, mode AddressingMode) {
	c.Y = c.A
	c.setZN(c.Y)
}

// TSX - Transfer Stack Pointer to X
func (c *CPU) TSX(addr uint16, mode AddressingMode) {
	c.X = c.S
	c.setZN(c.X)
}

// TXA - Transfer X to Accumulator
func (c *CPU) TXA(addr uint16, mode AddressingMode) {
	c.A = c.X
	c.setZN(c.A)
}

// TXS - Transfer X to Stack Pointer
//
// Unlike the other transfers, TXS touches no flags: S is not a value
// register.
func (c *CPU) TXS(addr uint16, mode AddressingMode) { c.S = c.X }

// TYA - Transfer Y to Accumulator
func (c *CPU) TYA(addr uint16, mode AddressingMode) {
	c.A = c.Y
	c.setZN(c.A)
}
