package nes

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// nonReadableAddr mirrors the reference nestest.log trace's skip-list: these
// addresses mutate PPU/joypad state on read, so the tracer must not
// actually read through them when resolving an operand's "= VV" suffix.
var nonReadableAddr = map[uint16]bool{
	0x2001: true, 0x2002: true, 0x2003: true, 0x2004: true,
	0x2005: true, 0x2006: true, 0x2007: true, 0x4016: true, 0x4017: true,
}

// Tracer produces nestest.log-format lines. Reference:
// original_source/lib/src/cpu/trace.rs (byte-for-byte column layout),
// adapted to the Go CPU/Bus/PPU types here.
type Tracer struct{}

// NewTracer creates a Tracer. It carries no state: every call to Line
// recomputes the trace directly from CPU/Bus/PPU state.
func NewTracer() *Tracer { return &Tracer{} }

// Line renders the trace for the instruction about to execute at c.PC. It
// must be called before CPU.Step so the registers and memory it reads
// reflect the pre-execution state.
func (t *Tracer) Line(c *CPU, b *Bus, p *PPU) string {
	begin := c.PC
	opcode := b.Peek(begin)
	inst := &opcodeTable[opcode]

	hexBytes := []byte{opcode}
	var operand string

	switch inst.size {
	case 1:
		if opcode == 0x0A || opcode == 0x4A || opcode == 0x2A || opcode == 0x6A {
			operand = "A"
		}
	case 2:
		arg := b.Peek(begin + 1)
		hexBytes = append(hexBytes, arg)
		operand = t.formatSize2(c, b, inst, begin, arg)
	case 3:
		lo := b.Peek(begin + 1)
		hi := b.Peek(begin + 2)
		hexBytes = append(hexBytes, lo, hi)
		operand = t.formatSize3(c, b, inst, begin)
	}

	hexParts := make([]string, len(hexBytes))
	for i, x := range hexBytes {
		hexParts[i] = fmt.Sprintf("%02X", x)
	}
	hexStr := strings.Join(hexParts, " ")

	name := inst.mnemonic
	if inst.undocumented {
		name = "*" + name
	}

	asm := strings.TrimRight(fmt.Sprintf("%04X  %-8s %4s %s", begin, hexStr, name, operand), " ")

	cpuState := fmt.Sprintf("%-47s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		asm, c.A, c.X, c.Y, c.P.encode(), c.S)

	ppuState := fmt.Sprintf("PPU:%3d,%3d CYC:%d", p.scanline, p.cycles, b.Cycles())

	return cpuState + " " + ppuState
}

func (t *Tracer) peekAt(b *Bus, addr uint16) byte {
	if nonReadableAddr[addr] {
		return 0
	}
	return b.Peek(addr)
}

func (t *Tracer) formatSize2(c *CPU, b *Bus, inst *instruction, begin uint16, arg byte) string {
	switch inst.mode {
	case modeImmediate:
		return fmt.Sprintf("#$%02X", arg)
	case modeZeroPage:
		addr := uint16(arg)
		return fmt.Sprintf("$%02X = %02X", addr, t.peekAt(b, addr))
	case modeZeroPageX:
		addr := uint16(arg + c.X)
		return fmt.Sprintf("$%02X,X @ %02X = %02X", arg, addr, t.peekAt(b, addr))
	case modeZeroPageY:
		addr := uint16(arg + c.Y)
		return fmt.Sprintf("$%02X,Y @ %02X = %02X", arg, addr, t.peekAt(b, addr))
	case modeIndirectX:
		zp := arg + c.X
		lo := uint16(b.Peek(uint16(zp)))
		hi := uint16(b.Peek(uint16(zp + 1)))
		addr := hi<<8 | lo
		return fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", arg, zp, addr, t.peekAt(b, addr))
	case modeIndirectY:
		lo := uint16(b.Peek(uint16(arg)))
		hi := uint16(b.Peek(uint16(arg + 1)))
		base := hi<<8 | lo
		addr := base + uint16(c.Y)
		return fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", arg, base, addr, t.peekAt(b, addr))
	case modeRelative:
		var target uint16
		if arg < 0x80 {
			target = begin + 2 + uint16(arg)
		} else {
			target = begin + 2 + uint16(arg) - 0x100
		}
		return fmt.Sprintf("$%04X", target)
	default:
		return ""
	}
}

func (t *Tracer) formatSize3(c *CPU, b *Bus, inst *instruction, begin uint16) string {
	addr := b.Peek16(begin + 1)
	switch inst.mode {
	case modeAbsolute:
		if inst.mnemonic == "JMP" || inst.mnemonic == "JSR" {
			return fmt.Sprintf("$%04X", addr)
		}
		return fmt.Sprintf("$%04X = %02X", addr, t.peekAt(b, addr))
	case modeAbsoluteX:
		eff := addr + uint16(c.X)
		return fmt.Sprintf("$%04X,X @ %04X = %02X", addr, eff, t.peekAt(b, eff))
	case modeAbsoluteY:
		eff := addr + uint16(c.Y)
		return fmt.Sprintf("$%04X,Y @ %04X = %02X", addr, eff, t.peekAt(b, eff))
	case modeIndirect:
		ptr := addr
		lo := uint16(b.Peek(ptr))
		var hi uint16
		if ptr&0x00FF == 0x00FF {
			hi = uint16(b.Peek(ptr & 0xFF00))
		} else {
			hi = uint16(b.Peek(ptr + 1))
		}
		target := hi<<8 | lo
		return fmt.Sprintf("($%04X) = %04X", ptr, target)
	default:
		return ""
	}
}

// Dump is a non-golden debug helper (not part of the nestest trace
// contract) for interactive inspection, grounded in jyane-jnes's
// debug_console.go REPL-style state printing but using go-spew instead of
// ad-hoc Printf calls.
func Dump(c *CPU, p *PPU) string {
	return spew.Sdump(struct {
		CPU *CPU
		PPU *PPU
	}{c, p})
}
