package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestBus(prg []byte) *Bus {
	cart := newTestCartridge(prg)
	ram := NewRAM(2048)
	ppu := NewPPU(cart)
	apu := NewAPU(nil)
	joypad := NewJoypad()
	return NewBus(ram, ppu, apu, joypad, cart, nil, nil)
}

func TestBus_RAMMirroring(t *testing.T) {
	b := newTestBus(nil)
	b.Write(0x0000, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x0800))
	assert.Equal(t, byte(0x42), b.Read(0x1000))
	assert.Equal(t, byte(0x42), b.Read(0x1800))
}

func TestBus_PPURegisterMirroring(t *testing.T) {
	b := newTestBus(nil)
	b.Write(0x2000, 0x80) // enable NMI via the base register
	b.Write(0x3FF8, 0x00) // mirrors $2000 (0x3FF8 & 0x2007 == 0x2000)
	// Confirms the write landed by checking the late-enable NMI edge still
	// fires through the mirrored $2000 alias.
	b.ppu.statusVBlank = true
	b.Write(0x2000, 0x00)
	b.Write(0x2008, 0x80) // mirror of $2000 again
	assert.True(t, b.ppu.nmiPending)
}

func TestBus_PeekDoesNotMutatePPULatchOrStatus(t *testing.T) {
	b := newTestBus(nil)
	b.ppu.statusVBlank = true
	b.ppu.latch = true
	before := b.ppu.statusVBlank
	assert.Equal(t, byte(0), b.Peek(0x2002))
	assert.Equal(t, before, b.ppu.statusVBlank)
	assert.True(t, b.ppu.latch)
}

func TestBus_OAMDMACopiesPageAndReturnsStallCost(t *testing.T) {
	b := newTestBus(nil)
	for i := 0; i < 256; i++ {
		b.ram.write(uint16(i), byte(i))
	}
	cycles := b.TriggerOAMDMA(0x00)
	assert.Equal(t, 513, cycles)
	assert.Equal(t, byte(0x10), b.ppu.oam[0x10])
	assert.Equal(t, byte(0xFF), b.ppu.oam[0xFF])
}

func TestBus_JoypadRoundTrip(t *testing.T) {
	b := newTestBus(nil)
	b.joypad.SetButton(ButtonA, true)
	b.Write(0x4016, 1)
	b.Write(0x4016, 0)
	assert.Equal(t, byte(1), b.Read(0x4016))
}

func TestBus_Tick_DrivesPPUAndReportsNMI(t *testing.T) {
	b := newTestBus(nil)
	b.Write(0x2000, 0x80) // enable NMI
	var fired bool
	for i := 0; i < 30000 && !fired; i++ {
		fired = b.Tick(1)
	}
	assert.True(t, fired, "NMI should fire once PPU reaches scanline 241")
}
