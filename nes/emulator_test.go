package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingRenderer struct {
	frames int
}

func (r *recordingRenderer) Render(frame *Frame) { r.frames++ }

type recordingJoypadSource struct {
	refreshes int
}

func (r *recordingJoypadSource) Refresh(j *Joypad) { r.refreshes++ }

func TestEmulator_StepAdvancesPC(t *testing.T) {
	e := newTestEmulator([]byte{0xEA, 0xEA}) // NOP NOP
	start := e.CPU().PC
	e.Step()
	assert.Equal(t, start+1, e.CPU().PC)
}

func TestEmulator_RendererFiresOncePerFrame(t *testing.T) {
	renderer := &recordingRenderer{}
	joypadSource := &recordingJoypadSource{}
	cart := newTestCartridge([]byte{0xEA})
	e := NewEmulator(cart, renderer, nil, joypadSource)
	e.Reset()

	for renderer.frames == 0 {
		e.Step()
	}
	assert.Equal(t, 1, renderer.frames)
	assert.Equal(t, 1, joypadSource.refreshes)
}

func TestEmulator_EnableTraceCallsWriter(t *testing.T) {
	e := newTestEmulator([]byte{0xEA})
	var lines []string
	e.EnableTrace(func(s string) { lines = append(lines, s) })
	e.Step()
	assert.Len(t, lines, 1)
	assert.Contains(t, lines[0], "NOP")
}

func TestEmulator_SetSpeakerForwardsAPUEvents(t *testing.T) {
	e := newTestEmulator(nil)
	rec := &recordingSpeaker{}
	e.SetSpeaker(rec)
	e.Bus().Write(0x4000, 0xFF)
	assert.NotEmpty(t, rec.events)
}
