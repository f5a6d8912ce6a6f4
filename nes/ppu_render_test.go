package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPPU_NameTableOffsets_HorizontalMirroring(t *testing.T) {
	cart := newTestCartridge(nil)
	cart.mirroring = MirrorHorizontal
	p := NewPPU(cart)
	p.ctrlNameTable = 0
	main, sub := p.nameTableOffsets()
	assert.Equal(t, uint16(0), main)
	assert.Equal(t, uint16(0x400), sub)
}

func TestPPU_ComposeFrame_SolidTilePixel(t *testing.T) {
	cart := newTestCartridge(nil) // CHR-RAM, NROM, horizontal mirroring
	p := NewPPU(cart)

	// Tile 0's top-left pixel: both CHR bitplanes' bit 7 set -> palette
	// index 3 (the third non-backdrop color).
	cart.writeCHR(0, 0x80)
	cart.writeCHR(8, 0x80)
	p.paletteRAM[3] = 0x05 // arbitrary system-palette index

	// A zeroed OAM would place all 64 sprites (tile 0) at (0,0) on top of
	// the background; move them below the visible frame.
	for i := 0; i < 256; i += 4 {
		p.oam[i] = 0xFF
	}

	var frame Frame
	p.ComposeFrame(&frame)

	want := colors[0x05]
	assert.Equal(t, want.R, frame.Pixels[0])
	assert.Equal(t, want.G, frame.Pixels[1])
	assert.Equal(t, want.B, frame.Pixels[2])
}

func TestPPU_RenderSprites_DrawsOpaquePixel(t *testing.T) {
	cart := newTestCartridge(nil)
	p := NewPPU(cart)

	// Sprite 0 at (5, 5), tile 1, palette select 0.
	p.oam[0] = 5 // Y
	p.oam[1] = 1 // tile index
	p.oam[2] = 0 // attributes: no flip, in front, palette 0
	p.oam[3] = 5 // X

	cart.writeCHR(1*16, 0x80)     // tile 1 row 0 upper plane, bit7 set
	cart.writeCHR(1*16+8, 0x80)   // tile 1 row 0 lower plane, bit7 set
	p.paletteRAM[0x13] = 0x0A // sprite palette 0, color 3 (value index for a fully-set pixel)

	var bgOpaque [FrameHeight][FrameWidth]bool
	var frame Frame
	p.renderSprites(&frame, &bgOpaque)

	want := colors[0x0A]
	idx := (5*FrameWidth + 5) * 3
	assert.Equal(t, want.R, frame.Pixels[idx])
	assert.Equal(t, want.G, frame.Pixels[idx+1])
	assert.Equal(t, want.B, frame.Pixels[idx+2])
}

func TestPPU_RenderSprites_BehindBGSkipsOpaqueBackground(t *testing.T) {
	cart := newTestCartridge(nil)
	p := NewPPU(cart)

	p.oam[0] = 5
	p.oam[1] = 1
	p.oam[2] = 0x20 // behind background
	p.oam[3] = 5

	cart.writeCHR(1*16, 0x80)
	cart.writeCHR(1*16+8, 0x80)
	p.paletteRAM[0x13] = 0x0A // sprite palette 0, color 3 (value index for a fully-set pixel)

	var bgOpaque [FrameHeight][FrameWidth]bool
	bgOpaque[5][5] = true
	var frame Frame
	p.renderSprites(&frame, &bgOpaque)

	idx := (5*FrameWidth + 5) * 3
	assert.Equal(t, byte(0), frame.Pixels[idx])
	assert.Equal(t, byte(0), frame.Pixels[idx+1])
	assert.Equal(t, byte(0), frame.Pixels[idx+2])
}
