package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWrite(t *testing.T) {
	r := NewRAM()
	assert.Equal(t, byte(0), r.Read(0x1234))

	r.Write(0x1234, 0x42)
	assert.Equal(t, byte(0x42), r.Read(0x1234))
}

func TestLoadAt(t *testing.T) {
	r := NewRAM()
	r.LoadAt(0x0200, []byte{0xa9, 0x01, 0x8d, 0x00, 0x04})
	assert.Equal(t, byte(0xa9), r.Read(0x0200))
	assert.Equal(t, byte(0x04), r.Read(0x0204))

	assert.Panics(t, func() { r.LoadAt(0xfff0, make([]byte, 32)) })
}

func TestSetResetVector(t *testing.T) {
	r := NewRAM()
	r.SetResetVector(0x0200)
	assert.Equal(t, byte(0x00), r.Read(0xfffc))
	assert.Equal(t, byte(0x02), r.Read(0xfffd))
}
