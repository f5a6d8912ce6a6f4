package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPPU_WriteCTRLDecodesFields(t *testing.T) {
	p := NewPPU(newTestCartridge(nil))
	p.writeCTRL(0xFF)
	assert.Equal(t, byte(3), p.ctrlNameTable)
	assert.Equal(t, byte(32), p.ctrlVRAMIncr)
	assert.Equal(t, uint16(0x1000), p.ctrlSpritePat)
	assert.Equal(t, uint16(0x1000), p.ctrlBGPat)
	assert.True(t, p.ctrlSpriteSize16)
	assert.True(t, p.ctrlMasterSlave)
	assert.True(t, p.ctrlNMIEnable)
}

func TestPPU_LateEnableNMIDuringVBlank(t *testing.T) {
	p := NewPPU(newTestCartridge(nil))
	p.statusVBlank = true
	p.writeCTRL(0x00)
	assert.False(t, p.nmiPending)
	p.writeCTRL(0x80) // flips nmi_enable false->true while in vblank
	assert.True(t, p.nmiPending)
}

func TestPPU_ReadSTATUSClearsVBlankAndLatch(t *testing.T) {
	p := NewPPU(newTestCartridge(nil))
	p.statusVBlank = true
	p.latch = true
	got := p.readSTATUS()
	assert.Equal(t, byte(0x80), got)
	assert.False(t, p.statusVBlank)
	assert.False(t, p.latch)
}

func TestPPU_SharedLatchScrollThenAddr(t *testing.T) {
	p := NewPPU(newTestCartridge(nil))
	p.writeSCROLL(0x11)
	assert.Equal(t, byte(0x11), p.scrollX)
	p.writeSCROLL(0x22)
	assert.Equal(t, byte(0x22), p.scrollY)
	assert.False(t, p.latch)

	p.writeSCROLL(0x33) // first write of a pair: latch now expects the second byte
	p.writeADDR(0x05)   // taken as the low address byte because the latch is shared
	assert.Equal(t, uint16(0x0005), p.addr)
	assert.False(t, p.latch)
}

func TestPPU_WriteReadDATABuffering(t *testing.T) {
	p := NewPPU(newTestCartridge(nil))
	// Point at a nametable address and write through $2006/$2007.
	p.writeADDR(0x20)
	p.writeADDR(0x00)
	p.writeDATA(0xAB)

	p.writeADDR(0x20)
	p.writeADDR(0x00)
	first := p.readDATA() // buffered: returns stale buffer, not 0xAB yet
	second := p.readDATA()
	assert.Equal(t, byte(0), first)
	assert.Equal(t, byte(0xAB), second)
}

func TestPPU_ReadDATAPaletteIsUnbuffered(t *testing.T) {
	p := NewPPU(newTestCartridge(nil))
	p.paletteRAM[0] = 0x30
	p.writeADDR(0x3F)
	p.writeADDR(0x00)
	assert.Equal(t, byte(0x30), p.readDATA())
}

func TestPaletteIndex_MirrorsSpriteBackdrop(t *testing.T) {
	assert.Equal(t, uint16(0x00), paletteIndex(0x3F10))
	assert.Equal(t, uint16(0x04), paletteIndex(0x3F14))
	assert.Equal(t, uint16(0x01), paletteIndex(0x3F01))
}

func TestMirrorNameTable_Vertical(t *testing.T) {
	cart := newTestCartridge(nil)
	cart.mirroring = MirrorVertical
	p := NewPPU(cart)
	assert.Equal(t, p.mirrorNameTable(0x2000), p.mirrorNameTable(0x2800))
	assert.Equal(t, p.mirrorNameTable(0x2400), p.mirrorNameTable(0x2C00))
}

func TestMirrorNameTable_Horizontal(t *testing.T) {
	cart := newTestCartridge(nil)
	cart.mirroring = MirrorHorizontal
	p := NewPPU(cart)
	assert.Equal(t, p.mirrorNameTable(0x2000), p.mirrorNameTable(0x2400))
	assert.Equal(t, p.mirrorNameTable(0x2800), p.mirrorNameTable(0x2C00))
}

func TestPPU_TickSignalsVBlankAndFrameComplete(t *testing.T) {
	p := NewPPU(newTestCartridge(nil))
	p.writeCTRL(0x80) // NMI enabled

	// Drive exactly to scanline 241 (vblank start): 241 scanlines * 341 cycles.
	frameComplete := p.tick(241 * 341)
	assert.False(t, frameComplete)
	assert.True(t, p.statusVBlank)
	assert.True(t, p.pollNMI())
	assert.False(t, p.pollNMI(), "pollNMI must only fire once per edge")

	// Finish out the rest of the frame (262 total scanlines).
	frameComplete = p.tick((262 - 241) * 341)
	assert.True(t, frameComplete)
	assert.False(t, p.statusVBlank)
}

func TestPPU_DMAWriteWrapsFromOAMAddr(t *testing.T) {
	p := NewPPU(newTestCartridge(nil))
	p.oamAddr = 0xFF
	var data [256]byte
	data[0] = 0x11
	data[1] = 0x22
	p.dmaWrite(data)
	assert.Equal(t, byte(0x11), p.oam[0xFF])
	assert.Equal(t, byte(0x22), p.oam[0x00]) // wrapped
}
