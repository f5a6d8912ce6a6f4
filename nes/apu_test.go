package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingSpeaker struct {
	events []SpeakerEvent
}

func (r *recordingSpeaker) Send(channel int, event SpeakerEvent) {
	r.events = append(r.events, event)
}

func TestAPU_PulseWriteEmitsSquareNote(t *testing.T) {
	rec := &recordingSpeaker{}
	apu := NewAPU(rec)
	apu.write(0x4000, 0b10_0_1_1111) // duty=50%, constant volume=15
	apu.write(0x4002, 0x00)
	apu.write(0x4003, 0x00)

	assert.NotEmpty(t, rec.events)
	last := rec.events[len(rec.events)-1]
	assert.NotNil(t, last.Square)
	assert.Equal(t, Duty50, last.Square.Duty)
	assert.InDelta(t, 1.0, last.Square.Volume, 0.001)
}

func TestAPU_NoiseWriteEmitsNoiseNote(t *testing.T) {
	rec := &recordingSpeaker{}
	apu := NewAPU(rec)
	apu.write(0x400C, 0x0F)
	apu.write(0x400E, 0x80) // short mode, period index 0

	last := rec.events[len(rec.events)-1]
	assert.NotNil(t, last.Noise)
	assert.Equal(t, NoiseShort, last.Noise.Mode)
}

func TestAPU_NilSpeakerDropsEvents(t *testing.T) {
	apu := NewAPU(nil)
	assert.NotPanics(t, func() {
		apu.write(0x4000, 0xFF)
	})
}

func TestAPU_ReadReturnsStatusStub(t *testing.T) {
	apu := NewAPU(nil)
	assert.Equal(t, byte(0x40), apu.read(0x4015))
}

func TestCalcHz(t *testing.T) {
	// A timer period of 0 yields the fastest representable frequency.
	assert.InDelta(t, CPUClock/16.0, calcHz(0), 0.01)
}
