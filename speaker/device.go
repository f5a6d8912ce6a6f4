// Package speaker implements nes.Speaker over a single portaudio stream,
// mixing four independently addressed oscillators (two pulse, one
// triangle, one noise).
// Grounded on jyane-jnes/ui/audio.go for the portaudio open/start/stream
// plumbing, and on original_source's per-channel SDL AudioCallback
// generators (src/speaker/sdl/square_wave.rs, triangle_wave.rs, and
// pc/src/speaker/noise.rs + pc/src/utils/noise.rs for the noise LFSR) for
// the waveform math, since the teacher's audio.go only ever drove one
// sine oscillator and the spec calls for all four NES channels.
package speaker

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/kohei-sano/nesgo/nes"
)

const sampleRate = 44100

// channel indices match the APU's Send(channel, event) numbering: 1 and 2
// are the pulse channels, 3 is triangle, 4 is noise.
const (
	chanPulse1 = 1
	chanPulse2 = 2
	chanTriangle = 3
	chanNoise    = 4
)

// square generates a duty-cycle pulse wave, ported from
// src/speaker/sdl/square_wave.rs's SquareWave::callback.
type square struct {
	duty   float64
	hz     float64
	volume float64
	phase  float64
}

func (s *square) next(freq float64) float32 {
	if s.hz == 0 {
		return 0
	}
	var sample float64
	if s.phase <= s.duty {
		sample = s.volume
	} else {
		sample = -s.volume
	}
	s.phase += s.hz / freq
	if s.phase >= 1.0 {
		s.phase -= 1.0
	}
	return float32(sample)
}

// triangleOsc generates the NES triangle channel's bipolar ramp, ported
// from src/speaker/sdl/triangle_wave.rs's TriangleWave::callback.
type triangleOsc struct {
	hz    float64
	phase float64
}

func (t *triangleOsc) next(freq float64) float32 {
	if t.hz == 0 {
		return 0
	}
	base := t.phase
	if t.phase > 0.5 {
		base = 1.0 - t.phase
	}
	sample := base*4.0 - 1.0
	t.phase += t.hz / freq
	if t.phase >= 1.0 {
		t.phase -= 1.0
	}
	return float32(sample)
}

// lfsr is the NES noise channel's 15-bit feedback shift register, ported
// from pc/src/utils/noise.rs's NoiseGenerator.
type lfsr struct {
	register uint16
	tap      uint
}

func newLFSR(mode nes.NoiseMode) *lfsr {
	tap := uint(1)
	if mode == nes.NoiseShort {
		tap = 6
	}
	return &lfsr{register: 1, tap: tap}
}

func (l *lfsr) next() bool {
	feedback := (l.register & 1) ^ ((l.register >> l.tap) & 1)
	l.register >>= 1
	l.register = l.register&0x3FFF | feedback<<14
	return l.register&1 == 0
}

// noiseOsc drives an lfsr at the note's Hz, ported from
// pc/src/speaker/noise.rs's Noise::callback.
type noiseOsc struct {
	hz     float64
	volume float64
	phase  float64
	value  bool
	gen    *lfsr
}

func (n *noiseOsc) next(freq float64) float32 {
	if n.hz == 0 || n.gen == nil {
		return 0
	}
	var sample float64
	if !n.value {
		sample = n.volume
	}
	prevPhase := n.phase
	n.phase += n.hz / freq
	if n.phase >= 1.0 {
		n.phase -= 1.0
	}
	if prevPhase > n.phase {
		n.value = n.gen.next()
	}
	return float32(sample)
}

// Device is an nes.Speaker that mixes four oscillators through one
// portaudio output stream.
type Device struct {
	stream *portaudio.Stream

	mu       sync.Mutex
	pulse1   square
	pulse2   square
	triangle triangleOsc
	noise    noiseOsc
}

// NewDevice creates a Device with every oscillator silent.
func NewDevice() *Device {
	return &Device{}
}

// Start opens and starts the default portaudio output stream.
func (d *Device) Start() error {
	portaudio.Initialize()
	stream, err := portaudio.OpenDefaultStream(0, 2, sampleRate, 0, d.callback)
	if err != nil {
		return fmt.Errorf("failed to open the audio stream: %w", err)
	}
	d.stream = stream
	if err := stream.Start(); err != nil {
		return fmt.Errorf("failed to start the audio stream: %w", err)
	}
	return nil
}

// Terminate stops the stream and shuts down portaudio.
func (d *Device) Terminate() {
	portaudio.Terminate()
	if d.stream != nil {
		d.stream.Close()
	}
}

// callback fills an interleaved stereo buffer, matching the single-slice
// convention of the callback in jyane-jnes's ui/audio.go (a mono stream).
func (d *Device) callback(out []float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := 0; i < len(out); i += 2 {
		mix := (d.pulse1.next(sampleRate) + d.pulse2.next(sampleRate) +
			d.triangle.next(sampleRate) + d.noise.next(sampleRate)) * 0.2
		out[i] = mix
		if i+1 < len(out) {
			out[i+1] = mix
		}
	}
}

// Send implements nes.Speaker, updating the oscillator for the decoded
// channel's register file. The core never blocks on this call: locking
// only ever contends with the callback's own brief critical section.
func (d *Device) Send(channel int, event nes.SpeakerEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch channel {
	case chanPulse1:
		if event.Square != nil {
			d.pulse1.duty = float64(event.Square.Duty)
			d.pulse1.hz = event.Square.Hz
			d.pulse1.volume = event.Square.Volume
		}
	case chanPulse2:
		if event.Square != nil {
			d.pulse2.duty = float64(event.Square.Duty)
			d.pulse2.hz = event.Square.Hz
			d.pulse2.volume = event.Square.Volume
		}
	case chanTriangle:
		if event.Triangle != nil {
			d.triangle.hz = event.Triangle.Hz
		}
	case chanNoise:
		if event.Noise != nil {
			if d.noise.gen == nil || d.noise.hz != event.Noise.Hz {
				d.noise.gen = newLFSR(event.Noise.Mode)
			}
			d.noise.hz = event.Noise.Hz
			d.noise.volume = event.Noise.Volume
		}
	}
}
