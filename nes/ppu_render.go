package nes

// ComposeFrame renders one whole frame from the current nametable, CHR and
// OAM state into frame. The bus calls it once per completed frame, when the
// PPU wraps from scanline 261 back to 0 (after VBlank has been cleared), not
// at the start of vblank. It renders the whole frame at once rather than
// dot-by-dot, trading cycle-accurate rendering for a much simpler pipeline
// (spec §4.4 "Frame composition").
// Reference algorithm shape: original_source/lib/src/render/utils/frame.rs
func (p *PPU) ComposeFrame(frame *Frame) {
	var bgOpaque [FrameHeight][FrameWidth]bool

	firstOffset, secondOffset := p.nameTableOffsets()

	p.renderBackground(frame, &bgOpaque, firstOffset,
		int(p.scrollX), int(p.scrollY), FrameWidth, FrameHeight,
		-int(p.scrollX), -int(p.scrollY))

	if p.scrollX > 0 {
		p.renderBackground(frame, &bgOpaque, secondOffset,
			0, 0, int(p.scrollX), FrameHeight,
			FrameWidth-int(p.scrollX), 0)
	} else if p.scrollY > 0 {
		p.renderBackground(frame, &bgOpaque, secondOffset,
			0, 0, FrameWidth, int(p.scrollY),
			0, FrameHeight-int(p.scrollY))
	}

	p.renderSprites(frame, &bgOpaque)
}

// nameTableOffsets returns the VRAM byte offsets (0 or 0x400) of the "main"
// nametable (the one PPUCTRL currently points at) and the "sub" nametable
// used to fill in the strip scrolled into view from a neighbor.
func (p *PPU) nameTableOffsets() (uint16, uint16) {
	addr := 0x2000 + 0x400*uint16(p.ctrlNameTable)
	switch p.cart.Mirroring() {
	case MirrorVertical:
		if addr == 0x2000 || addr == 0x2800 {
			return 0, 0x400
		}
		return 0x400, 0
	case MirrorFourScreen:
		return 0, 0x400
	default: // MirrorHorizontal
		if addr == 0x2000 || addr == 0x2400 {
			return 0, 0x400
		}
		return 0x400, 0
	}
}

func (p *PPU) renderBackground(frame *Frame, bgOpaque *[FrameHeight][FrameWidth]bool, base uint16, vx, vy, vw, vh, shiftX, shiftY int) {
	for i := 0; i < 0x3C0; i++ {
		tileIdx := p.vram.read(base + uint16(i))
		tileColumn := i % 32
		tileRow := i / 32

		attrIdx := (tileRow/4)*8 + tileColumn/4
		attrByte := p.vram.read(base + 0x3C0 + uint16(attrIdx))
		palette := p.bgPalette(attrByte, tileColumn, tileRow)

		tileAddr := p.ctrlBGPat + uint16(tileIdx)*16
		for row := 0; row < 8; row++ {
			upper := p.cart.readCHR(tileAddr + uint16(row))
			lower := p.cart.readCHR(tileAddr + uint16(row) + 8)
			for col := 0; col < 8; col++ {
				shift := 7 - uint(col)
				value := ((lower>>shift)&1)<<1 | ((upper >> shift) & 1)

				px := tileColumn*8 + col
				py := tileRow*8 + row
				if px < vx || px >= vx+vw || py < vy || py >= vy+vh {
					continue
				}
				sx := shiftX + px
				sy := shiftY + py
				if sx < 0 || sx >= FrameWidth || sy < 0 || sy >= FrameHeight {
					continue
				}
				frame.setPixel(sx, sy, colors[palette[value]&0x3F])
				if value != 0 {
					bgOpaque[sy][sx] = true
				}
			}
		}
	}
}

// bgPalette resolves the 4-color palette (as raw palette-RAM bytes) for the
// tile at (tileColumn, tileRow) given its attribute-table byte.
func (p *PPU) bgPalette(attrByte byte, tileColumn, tileRow int) [4]byte {
	var paletteIdx byte
	switch {
	case tileColumn%4/2 == 0 && tileRow%4/2 == 0:
		paletteIdx = attrByte & 0b11
	case tileColumn%4/2 == 1 && tileRow%4/2 == 0:
		paletteIdx = (attrByte >> 2) & 0b11
	case tileColumn%4/2 == 0 && tileRow%4/2 == 1:
		paletteIdx = (attrByte >> 4) & 0b11
	default:
		paletteIdx = (attrByte >> 6) & 0b11
	}
	start := 1 + int(paletteIdx)*4
	return [4]byte{p.paletteRAM[0], p.paletteRAM[start], p.paletteRAM[start+1], p.paletteRAM[start+2]}
}

// spritePalette resolves the 4-color palette for a sprite attribute byte's
// low two bits (the sprite palette select field).
func (p *PPU) spritePalette(paletteIdx byte) [4]byte {
	start := 0x11 + int(paletteIdx)*4
	return [4]byte{0, p.paletteRAM[start], p.paletteRAM[start+1], p.paletteRAM[start+2]}
}

func (p *PPU) spriteHeight() int {
	if p.ctrlSpriteSize16 {
		return 16
	}
	return 8
}

// renderSprites draws OAM sprites back-to-front (OAM index 63 first, 0
// last) so lower-indexed sprites win on overlap, matching hardware
// priority. Reference: original_source/lib/src/render/utils/frame.rs
// render_sprite (step_by(4).rev()).
func (p *PPU) renderSprites(frame *Frame, bgOpaque *[FrameHeight][FrameWidth]bool) {
	height := p.spriteHeight()
	for i := 252; i >= 0; i -= 4 {
		tileY := int(p.oam[i])
		tile := p.oam[i+1]
		attr := p.oam[i+2]
		tileX := int(p.oam[i+3])

		flipV := attr&0x80 != 0
		flipH := attr&0x40 != 0
		behindBG := attr&0x20 != 0
		palette := p.spritePalette(attr & 0b11)

		var bank uint16
		var baseTile byte
		if height == 16 {
			if tile&1 != 0 {
				bank = 0x1000
			} else {
				bank = 0x0000
			}
			baseTile = tile &^ 1
		} else {
			bank = p.ctrlSpritePat
			baseTile = tile
		}

		for row := 0; row < height; row++ {
			effRow := row
			if flipV {
				effRow = height - 1 - row
			}
			var tileNum byte
			fetchRow := effRow
			if height == 16 {
				if effRow >= 8 {
					tileNum = baseTile + 1
					fetchRow = effRow - 8
				} else {
					tileNum = baseTile
				}
			} else {
				tileNum = baseTile
			}
			tileAddr := bank + uint16(tileNum)*16
			upper := p.cart.readCHR(tileAddr + uint16(fetchRow))
			lower := p.cart.readCHR(tileAddr + uint16(fetchRow) + 8)

			for col := 0; col < 8; col++ {
				effCol := col
				if flipH {
					effCol = 7 - col
				}
				shift := 7 - uint(effCol)
				value := ((lower>>shift)&1)<<1 | ((upper >> shift) & 1)
				if value == 0 {
					continue
				}
				px := tileX + col
				py := tileY + row
				if px < 0 || px >= FrameWidth || py < 0 || py >= FrameHeight {
					continue
				}
				if behindBG && bgOpaque[py][px] {
					continue
				}
				frame.setPixel(px, py, colors[palette[value]&0x3F])
			}
		}
	}
}
