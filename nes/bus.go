package nes

import "github.com/golang/glog"

// Bus routes 16-bit CPU addresses to RAM, PPU registers, APU registers, the
// joypad and PRG-ROM, and drives the PPU clock in lockstep with the CPU.
// Reference: jyane-jnes/nes/cpubus.go (memory map layout and glog usage),
// jyane-jnes/nes/console.go (cycle-ratio driving loop).
type Bus struct {
	ram    *RAM
	ppu    *PPU
	apu    *APU
	joypad *Joypad
	cart   *Cartridge

	renderer     Renderer
	joypadSource JoypadSource

	cycles uint64
}

// NewBus wires a Bus to its components. renderer/joypadSource may be nil
// during headless use (tests, nestest replay).
func NewBus(ram *RAM, ppu *PPU, apu *APU, joypad *Joypad, cart *Cartridge, renderer Renderer, joypadSource JoypadSource) *Bus {
	return &Bus{
		ram:          ram,
		ppu:          ppu,
		apu:          apu,
		joypad:       joypad,
		cart:         cart,
		renderer:     renderer,
		joypadSource: joypadSource,
	}
}

func (b *Bus) SetRenderer(r Renderer)          { b.renderer = r }
func (b *Bus) SetJoypadSource(j JoypadSource)  { b.joypadSource = j }
func (b *Bus) Cycles() uint64                  { return b.cycles }

// Read reads a byte from the CPU's address space.
func (b *Bus) Read(address uint16) byte {
	switch {
	case address < 0x2000:
		return b.ram.read(address & 0x07FF)
	case address == 0x2002:
		return b.ppu.readSTATUS()
	case address == 0x2004:
		return b.ppu.readOAMDATA()
	case address == 0x2007:
		return b.ppu.readDATA()
	case address >= 0x2000 && address < 0x4000:
		return b.readPPUMirror(address)
	case address == 0x4016:
		return b.joypad.read()
	case address == 0x4017:
		return 0
	case address >= 0x4000 && address <= 0x4015:
		return b.apu.read(address)
	case address >= 0x8000:
		return b.cart.readPRG(address)
	default:
		glog.Infof("unmapped bus read at 0x%04x, returning 0xFF", address)
		return 0xFF
	}
}

func (b *Bus) readPPUMirror(address uint16) byte {
	mirrored := 0x2000 | address&0x0007
	switch mirrored {
	case 0x2002:
		return b.ppu.readSTATUS()
	case 0x2004:
		return b.ppu.readOAMDATA()
	case 0x2007:
		return b.ppu.readDATA()
	default:
		glog.Infof("read of write-only PPU register mirror 0x%04x, returning 0", address)
		return 0
	}
}

// Read16 reads a little-endian word.
func (b *Bus) Read16(address uint16) uint16 {
	lo := uint16(b.Read(address))
	hi := uint16(b.Read(address + 1))
	return hi<<8 | lo
}

// Peek reads a byte without side effects, for the tracer's operand
// resolution. The PPU registers and their mirrors ($2000-$3FFF) and the
// joypad ports ($4016, $4017) return 0 instead of reading through.
// Reference: spec §4.7 "reads for trace must not mutate PPU status or OAM".
func (b *Bus) Peek(address uint16) byte {
	switch {
	case address < 0x2000:
		return b.ram.read(address & 0x07FF)
	case address >= 0x2000 && address < 0x4000:
		return 0
	case address == 0x4016 || address == 0x4017:
		return 0
	case address >= 0x4000 && address <= 0x4015:
		return b.apu.read(address)
	case address >= 0x8000:
		return b.cart.readPRG(address)
	default:
		return 0xFF
	}
}

// Peek16 reads a little-endian word without side effects.
func (b *Bus) Peek16(address uint16) uint16 {
	lo := uint16(b.Peek(address))
	hi := uint16(b.Peek(address + 1))
	return hi<<8 | lo
}

// Write writes a byte into the CPU's address space. Writing 0x4014 runs the
// OAM-DMA copy through TriggerOAMDMA and discards the stall cost it returns;
// CPU.write books that stall on the CPU side after calling this method.
func (b *Bus) Write(address uint16, data byte) {
	switch {
	case address < 0x2000:
		b.ram.write(address&0x07FF, data)
	case address == 0x2000:
		b.ppu.writeCTRL(data)
	case address == 0x2001:
		b.ppu.writeMASK(data)
	case address == 0x2003:
		b.ppu.writeOAMADDR(data)
	case address == 0x2004:
		b.ppu.writeOAMDATA(data)
	case address == 0x2005:
		b.ppu.writeSCROLL(data)
	case address == 0x2006:
		b.ppu.writeADDR(data)
	case address == 0x2007:
		b.ppu.writeDATA(data)
	case address >= 0x2000 && address < 0x4000:
		b.writePPUMirror(address, data)
	case address == 0x4014:
		b.TriggerOAMDMA(data)
	case address == 0x4016:
		b.joypad.write(data)
	case address >= 0x4000 && address <= 0x4017:
		b.apu.write(address, data)
	case address >= 0x8000:
		glog.Infof("write to PRG-ROM at 0x%04x ignored", address)
	default:
		glog.Infof("unmapped bus write at 0x%04x, data=0x%02x", address, data)
	}
}

func (b *Bus) writePPUMirror(address uint16, data byte) {
	mirrored := 0x2000 | address&0x0007
	switch mirrored {
	case 0x2000:
		b.ppu.writeCTRL(data)
	case 0x2001:
		b.ppu.writeMASK(data)
	case 0x2003:
		b.ppu.writeOAMADDR(data)
	case 0x2004:
		b.ppu.writeOAMDATA(data)
	case 0x2005:
		b.ppu.writeSCROLL(data)
	case 0x2006:
		b.ppu.writeADDR(data)
	case 0x2007:
		b.ppu.writeDATA(data)
	}
}

// TriggerOAMDMA copies 256 bytes starting at page<<8 into PPU OAM and
// returns the CPU stall cost (spec §4.2 "S4 - OAM-DMA"; fixed at 513
// cycles per the Open Question decision in DESIGN.md).
func (b *Bus) TriggerOAMDMA(page byte) int {
	var data [256]byte
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		data[i] = b.Read(base + uint16(i))
	}
	b.ppu.dmaWrite(data)
	return 513
}

// Tick advances the bus clock by n CPU cycles, driving the PPU by 3n PPU
// cycles. When the PPU completes a frame this composes it and dispatches
// to the Renderer/JoypadSource collaborators, in that order, before
// returning. Returns whether the CPU should service an NMI now.
func (b *Bus) Tick(n int) bool {
	b.cycles += uint64(n)
	frameComplete := b.ppu.tick(n * 3)
	if frameComplete {
		if b.renderer != nil {
			var frame Frame
			b.ppu.ComposeFrame(&frame)
			b.renderer.Render(&frame)
		}
		if b.joypadSource != nil {
			b.joypadSource.Refresh(b.joypad)
		}
	}
	return b.ppu.pollNMI()
}
