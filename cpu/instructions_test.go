package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mos6502/mem"
)

// newProgramCPU loads program at $0200 and points the reset vector there,
// the memory-map convention every test program in this file assumes.
func newProgramCPU(t *testing.T, program []byte) (*CPU, *mem.RAM) {
	t.Helper()
	ram := mem.NewRAM()
	ram.LoadAt(0x0200, program)
	ram.SetResetVector(0x0200)

	c, err := Init(ram)
	assert.NoError(t, err)
	return c, ram
}

// ADC of $7F + $01 with C=0 sets V=1, N=1; result $80.
func TestADCOverflow(t *testing.T) {
	c, _ := newProgramCPU(t, []byte{0xa9, 0x7f, 0x69, 0x01}) // LDA #$7f; ADC #$01
	c.Step()
	c.Step()

	assert.Equal(t, byte(0x80), c.A)
	assert.True(t, c.GetFlag(FlagOverflow))
	assert.True(t, c.GetFlag(FlagNegative))
	assert.False(t, c.GetFlag(FlagCarry))
}

// SBC of $50 - $B0 with C=1 sets V=1, C=0; result $A0.
func TestSBCOverflow(t *testing.T) {
	c, _ := newProgramCPU(t, []byte{0xa9, 0x50, 0x38, 0xe9, 0xb0}) // LDA #$50; SEC; SBC #$B0
	c.Step()
	c.Step()
	c.Step()

	assert.Equal(t, byte(0xa0), c.A)
	assert.True(t, c.GetFlag(FlagOverflow))
	assert.False(t, c.GetFlag(FlagCarry))
}

func TestCMPSetsCarryOnGreaterOrEqual(t *testing.T) {
	c, _ := newProgramCPU(t, []byte{0xa9, 0x10, 0xc9, 0x10}) // LDA #$10; CMP #$10
	c.Step()
	c.Step()

	assert.True(t, c.GetFlag(FlagCarry))
	assert.True(t, c.GetFlag(FlagZero))
	assert.False(t, c.GetFlag(FlagNegative))
}

func TestBITDoesNotTouchAccumulator(t *testing.T) {
	c, ram := newProgramCPU(t, []byte{0xa9, 0x0f, 0x24, 0x10}) // LDA #$0f; BIT $10
	ram.Write(0x0010, 0xc0)                                    // bits 6 and 7 set, bit0-3 clear
	c.Step()
	c.Step()

	assert.Equal(t, byte(0x0f), c.A)
	assert.True(t, c.GetFlag(FlagZero)) // $0f & $c0 == 0
	assert.True(t, c.GetFlag(FlagOverflow))
	assert.True(t, c.GetFlag(FlagNegative))
}

func TestASLAccumulatorShiftsByOne(t *testing.T) {
	c, _ := newProgramCPU(t, []byte{0xa9, 0x41, 0x0a}) // LDA #$41; ASL A
	c.Step()
	c.Step()

	assert.Equal(t, byte(0x82), c.A)
	assert.False(t, c.GetFlag(FlagCarry))
	assert.True(t, c.GetFlag(FlagNegative))
}

func TestRORRotatesCarryIn(t *testing.T) {
	c, _ := newProgramCPU(t, []byte{0x38, 0xa9, 0x00, 0x6a}) // SEC; LDA #$00; ROR A
	c.Step()
	c.Step()
	c.Step()

	assert.Equal(t, byte(0x80), c.A)
	assert.False(t, c.GetFlag(FlagCarry))
}

// Scenario 1: Add two bytes. LDA #$05; ADC #$03; BRK.
func TestScenarioAddTwoBytes(t *testing.T) {
	c, _ := newProgramCPU(t, []byte{0xa9, 0x05, 0x69, 0x03, 0x00})
	c.Step()
	c.Step()

	assert.Equal(t, byte(0x08), c.A)
	assert.False(t, c.GetFlag(FlagCarry))
	assert.False(t, c.GetFlag(FlagZero))
	assert.False(t, c.GetFlag(FlagNegative))
	assert.False(t, c.GetFlag(FlagOverflow))
}

// Scenario 2: Indirect indexed store. LDY #$04; LDA #$AB; STA ($80),Y; BRK.
func TestScenarioIndirectIndexedStore(t *testing.T) {
	c, ram := newProgramCPU(t, []byte{0xa0, 0x04, 0xa9, 0xab, 0x91, 0x80, 0x00})
	ram.Write(0x0080, 0x00)
	ram.Write(0x0081, 0x03)

	c.Step() // LDY #$04
	c.Step() // LDA #$AB
	c.Step() // STA ($80),Y

	assert.Equal(t, byte(0xab), ram.Read(0x0304))
}

// Scenario 3: Subroutine round-trip.
// JSR $0208; BRK(at $0203); ... ; $0208: LDA #$42; RTS.
func TestScenarioSubroutineRoundTrip(t *testing.T) {
	program := []byte{
		0x20, 0x08, 0x02, // $0200 JSR $0208
		0x00, 0x00, 0x00, 0x00, 0x00, // $0203-$0207
		0xa9, 0x42, // $0208 LDA #$42
		0x60, // $020a RTS
	}
	c, _ := newProgramCPU(t, program)
	sBefore := c.S

	c.Step() // JSR
	assert.Equal(t, uint16(0x0208), c.PC)

	c.Step() // LDA #$42
	c.Step() // RTS

	assert.Equal(t, uint16(0x0203), c.PC)
	assert.Equal(t, byte(0x42), c.A)
	assert.Equal(t, sBefore, c.S)
}

// Scenario 5: Conditional branch backward. LDX #$03; loop: DEX; BNE loop; BRK.
func TestScenarioBackwardBranchLoop(t *testing.T) {
	program := []byte{0xa2, 0x03, 0xca, 0xd0, 0xfd, 0x00}
	c, _ := newProgramCPU(t, program)

	c.Step() // LDX #$03
	for i := 0; i < 3; i++ {
		c.Step() // DEX
		c.Step() // BNE
	}

	assert.Equal(t, byte(0x00), c.X)
	assert.True(t, c.GetFlag(FlagZero))
	assert.Equal(t, uint16(0x0205), c.PC) // sitting on the BRK
}

// Scenario 6: PLP clears B, forces U, regardless of the pulled byte's bits.
func TestScenarioPLPForcesUnusedClearsBreak(t *testing.T) {
	c := newTestCPU(t)
	c.push8(0xff & ^byte(FlagUnused)) // every bit set except Unused
	c.PLP(0, Implied)

	assert.True(t, c.GetFlag(FlagUnused))
	assert.False(t, c.GetFlag(FlagBreak))
}

func TestNOPAdvancesPCByOneAndTouchesNothing(t *testing.T) {
	c, _ := newProgramCPU(t, []byte{0xea})
	p, x, y, a := c.P, c.X, c.Y, c.A
	pc := c.PC

	op := c.Step()

	assert.Equal(t, byte(0xea), op)
	assert.Equal(t, pc+1, c.PC)
	assert.Equal(t, p, c.P)
	assert.Equal(t, x, c.X)
	assert.Equal(t, y, c.Y)
	assert.Equal(t, a, c.A)
}
