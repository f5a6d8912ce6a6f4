package nes

// Emulator wires a Cartridge to RAM/PPU/APU/Joypad/Bus/CPU and drives the
// step loop. Reference: jyane-jnes/nes/console.go's NewConsole/Reset/Step,
// generalized to the Renderer/Speaker/JoypadSource collaborator contract
// in place of the teacher's concrete image.RGBA/audio-channel coupling.
type Emulator struct {
	cart   *Cartridge
	ram    *RAM
	ppu    *PPU
	apu    *APU
	joypad *Joypad
	bus    *Bus
	cpu    *CPU

	tracer      *Tracer
	traceWriter func(string)
}

// NewEmulator constructs an emulator for cart. renderer/speaker/joypadSource
// may be nil (useful for headless CPU-only tests such as nestest replay).
func NewEmulator(cart *Cartridge, renderer Renderer, speaker Speaker, joypadSource JoypadSource) *Emulator {
	ram := NewRAM(2048)
	ppu := NewPPU(cart)
	apu := NewAPU(speaker)
	joypad := NewJoypad()
	bus := NewBus(ram, ppu, apu, joypad, cart, renderer, joypadSource)
	cpu := NewCPU(bus)

	return &Emulator{
		cart:   cart,
		ram:    ram,
		ppu:    ppu,
		apu:    apu,
		joypad: joypad,
		bus:    bus,
		cpu:    cpu,
	}
}

// Reset restores CPU and PPU to their post-reset state.
func (e *Emulator) Reset() {
	e.cpu.Reset()
	e.ppu.reset()
}

// EnableTrace turns on per-instruction nestest-format tracing; each line
// is passed to write as it's produced.
func (e *Emulator) EnableTrace(write func(string)) {
	e.tracer = NewTracer()
	e.traceWriter = write
}

// Step executes exactly one CPU instruction (or one stall/interrupt tick)
// and returns the CPU cycles it consumed. A pending NMI is polled before
// tracing, not after, so the instruction it preempts is never traced and
// the handler's first instruction is traced on the following Step.
func (e *Emulator) Step() int {
	if e.cpu.willServiceNMI() {
		return e.cpu.Step()
	}
	if e.tracer != nil && e.traceWriter != nil {
		e.traceWriter(e.tracer.Line(e.cpu, e.bus, e.ppu))
	}
	return e.cpu.Step()
}

// CPU exposes the CPU for tests and debug tooling.
func (e *Emulator) CPU() *CPU { return e.cpu }

// PPU exposes the PPU for tests and debug tooling.
func (e *Emulator) PPU() *PPU { return e.ppu }

// Bus exposes the Bus for tests and debug tooling.
func (e *Emulator) Bus() *Bus { return e.bus }

// Joypad exposes the Joypad so a host can wire its own JoypadSource or poll
// buttons directly in tests.
func (e *Emulator) Joypad() *Joypad { return e.joypad }

// SetRenderer/SetSpeaker/SetJoypadSource let a host attach collaborators
// after construction (e.g. once a window is created).
func (e *Emulator) SetRenderer(r Renderer)         { e.bus.SetRenderer(r) }
func (e *Emulator) SetJoypadSource(j JoypadSource) { e.bus.SetJoypadSource(j) }
func (e *Emulator) SetSpeaker(s Speaker)           { e.apu.SetSpeaker(s) }
