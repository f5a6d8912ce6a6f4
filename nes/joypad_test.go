package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoypad_ShiftOrder(t *testing.T) {
	j := NewJoypad()
	j.SetButtons([8]bool{true, false, true, false, false, false, false, true})
	j.write(1) // strobe high
	j.write(0) // strobe low, latches the shift register

	var bits []byte
	for i := 0; i < 8; i++ {
		bits = append(bits, j.read())
	}
	assert.Equal(t, []byte{1, 0, 1, 0, 0, 0, 0, 1}, bits)
}

func TestJoypad_StrobeHighPinsButtonA(t *testing.T) {
	j := NewJoypad()
	j.SetButton(ButtonA, true)
	j.write(1)
	assert.Equal(t, byte(1), j.read())
	assert.Equal(t, byte(1), j.read())
	assert.Equal(t, byte(1), j.read())
}

func TestJoypad_ReadsPastEighthReturnOne(t *testing.T) {
	j := NewJoypad()
	j.write(1)
	j.write(0)
	for i := 0; i < 8; i++ {
		j.read()
	}
	assert.Equal(t, byte(1), j.read())
	assert.Equal(t, byte(1), j.read())
}
