package nes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracer_LineFormatMatchesNestestColumns(t *testing.T) {
	prg := []byte{0xA9, 0x42} // LDA #$42
	e := newTestEmulator(prg)
	tr := NewTracer()
	line := tr.Line(e.CPU(), e.Bus(), e.PPU())

	assert.True(t, strings.HasPrefix(line, "8000  A9 42     LDA"), line)
	assert.Contains(t, line, "#$42")
	assert.Contains(t, line, "A:00 X:00 Y:00")
	assert.Contains(t, line, "SP:FD")
	// Reset burns 7 CPU cycles before the first instruction is fetched, so
	// the first traced line starts at CYC:7, not CYC:0. Emulator.Reset
	// zeroes the PPU's own scanline/dot counters after CPU reset ticks the
	// bus, so those stay at 0,0.
	assert.Contains(t, line, "PPU:  0,  0 CYC:7")
}

func TestTracer_UndocumentedOpcodeIsStarred(t *testing.T) {
	prg := []byte{0xA7, 0x10} // LAX $10 (illegal)
	e := newTestEmulator(prg)
	tr := NewTracer()
	line := tr.Line(e.CPU(), e.Bus(), e.PPU())
	assert.Contains(t, line, "*LAX")
}

func TestTracer_DoesNotMutatePPUStatus(t *testing.T) {
	prg := []byte{0xEA} // NOP
	e := newTestEmulator(prg)
	e.PPU().statusVBlank = true
	tr := NewTracer()
	tr.Line(e.CPU(), e.Bus(), e.PPU())
	assert.True(t, e.PPU().statusVBlank, "tracing must not clear PPUSTATUS vblank")
}

func TestTracer_AbsoluteJMPOmitsValueSuffix(t *testing.T) {
	prg := []byte{0x4C, 0x00, 0x80} // JMP $8000
	e := newTestEmulator(prg)
	tr := NewTracer()
	line := tr.Line(e.CPU(), e.Bus(), e.PPU())
	assert.Contains(t, line, "JMP $8000")
	assert.NotContains(t, line, "JMP $8000 =")
}

func TestDump_IncludesCPUAndPPUSections(t *testing.T) {
	prg := []byte{0xEA}
	e := newTestEmulator(prg)
	out := Dump(e.CPU(), e.PPU())
	assert.Contains(t, out, "CPU")
	assert.Contains(t, out, "PPU")
}
