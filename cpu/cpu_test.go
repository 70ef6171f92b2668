package cpu

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"

	"mos6502/mem"
)

func TestInitRejectsNilBus(t *testing.T) {
	c, err := Init(nil)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrNilBus)
}

func TestResetInvariants(t *testing.T) {
	ram := mem.NewRAM()
	ram.SetResetVector(0x8000)

	c, err := Init(ram)
	assert.NoError(t, err)

	assert.Equal(t, byte(0), c.A)
	assert.Equal(t, byte(0), c.X)
	assert.Equal(t, byte(0), c.Y)
	assert.Equal(t, byte(0xfd), c.S)
	assert.Equal(t, byte(0x24), c.P)
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.True(t, c.GetFlag(FlagUnused))
	assert.True(t, c.GetFlag(FlagInterrupt))
}

func TestResetIsIdempotent(t *testing.T) {
	ram := mem.NewRAM()
	ram.SetResetVector(0x1234)

	c, err := Init(ram)
	assert.NoError(t, err)

	c.A, c.X, c.Y, c.S, c.P, c.PC = 1, 2, 3, 4, 5, 6
	c.Reset()
	first := *c

	c.A, c.X, c.Y, c.S, c.P, c.PC = 9, 9, 9, 9, 9, 9
	c.Reset()
	second := *c

	// Bus is irrelevant to the comparison (both snapshots hold the same
	// RAM): zero it on both before diffing, so the diff stays on the
	// registers and the cycle counter.
	first.Bus, second.Bus = nil, nil
	if diff := deep.Equal(first, second); diff != nil {
		t.Errorf("two resets produced different states: %v", diff)
	}
}

// Every Step asserts Unused regardless of what the instruction did to P.
func TestUnusedFlagAlwaysSetAfterStep(t *testing.T) {
	ram := mem.NewRAM()
	ram.LoadAt(0x0200, []byte{0xa9, 0x00}) // LDA #$00
	ram.SetResetVector(0x0200)

	c, err := Init(ram)
	assert.NoError(t, err)

	c.SetFlag(FlagUnused, false)
	c.Step()
	assert.True(t, c.GetFlag(FlagUnused))
}

func TestPHAPLARoundTrip(t *testing.T) {
	ram := mem.NewRAM()
	ram.LoadAt(0x0200, []byte{0xa9, 0x77, 0x48, 0xa9, 0x00, 0x68}) // LDA #$77; PHA; LDA #$00; PLA
	ram.SetResetVector(0x0200)

	c, err := Init(ram)
	assert.NoError(t, err)

	c.Step()
	c.Step()
	c.Step()
	assert.Equal(t, byte(0x00), c.A)
	c.Step()
	assert.Equal(t, byte(0x77), c.A)
}

func TestLDAImmediateSetsZeroAndNegative(t *testing.T) {
	cases := []struct {
		val      byte
		zero, nv bool
	}{
		{0x00, true, false},
		{0x01, false, false},
		{0x7f, false, false},
		{0x80, false, true},
		{0xff, false, true},
	}
	for _, tc := range cases {
		ram := mem.NewRAM()
		ram.LoadAt(0x0200, []byte{0xa9, tc.val})
		ram.SetResetVector(0x0200)

		c, err := Init(ram)
		assert.NoError(t, err)
		c.Step()

		assert.Equal(t, tc.val, c.A)
		assert.Equal(t, tc.zero, c.GetFlag(FlagZero))
		assert.Equal(t, tc.nv, c.GetFlag(FlagNegative))
	}
}

func TestTriggerIRQRespectsInterruptDisable(t *testing.T) {
	ram := mem.NewRAM()
	ram.LoadAt(0x0200, []byte{0xea, 0xea}) // NOP NOP
	ram.SetResetVector(0x0200)
	ram.Write(vectorIRQ, 0x00)
	ram.Write(vectorIRQ+1, 0x90)

	c, err := Init(ram)
	assert.NoError(t, err)
	c.SetFlag(FlagInterrupt, true)
	c.TriggerIRQ()

	c.Step() // interrupt-disable set, IRQ must not be serviced
	assert.Equal(t, uint16(0x0201), c.PC)
}

func TestTriggerNMIIsNeverMasked(t *testing.T) {
	ram := mem.NewRAM()
	ram.LoadAt(0x0200, []byte{0xea, 0xea})
	ram.SetResetVector(0x0200)
	ram.Write(vectorNMI, 0x00)
	ram.Write(vectorNMI+1, 0x90)

	c, err := Init(ram)
	assert.NoError(t, err)
	c.SetFlag(FlagInterrupt, true)
	c.TriggerNMI()

	c.Step()
	assert.Equal(t, uint16(0x9000), c.PC)
}

func TestTriggerIRQDoesNotClobberPendingInterrupt(t *testing.T) {
	c := newTestCPU(t)
	c.TriggerNMI()
	c.TriggerIRQ() // must not overwrite the already-pending NMI
	assert.Equal(t, interruptNMI, c.interrupt)
}
