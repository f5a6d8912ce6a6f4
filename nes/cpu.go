package nes

// CPU emulates the NES's 6502-derived CPU (Ricoh 2A03, no decimal mode).
// References:
//   https://en.wikipedia.org/wiki/MOS_Technology_6502
//   http://www.6502.org/tutorials/6502opcodes.html
// Grounded on jyane-jnes/nes/cpu.go's table-of-structs dispatch and status
// bit layout; the addressing-mode resolver and several opcodes below fix
// bugs present in that source (see DESIGN.md).
type addressingMode int

const (
	modeImplied addressingMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeRelative
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
)

// status is the 6502 processor status register, kept unpacked for readable
// flag logic and packed on demand for push/pull and the tracer.
type status struct {
	C bool // carry
	Z bool // zero
	I bool // interrupt disable
	D bool // decimal (unused on NES, still stored)
	B bool // break, only meaningful in the pushed byte
	R bool // reserved, always pushed as 1
	V bool // overflow
	N bool // negative
}

func (s *status) encode() byte {
	var res byte
	if s.C {
		res |= 1 << 0
	}
	if s.Z {
		res |= 1 << 1
	}
	if s.I {
		res |= 1 << 2
	}
	if s.D {
		res |= 1 << 3
	}
	if s.B {
		res |= 1 << 4
	}
	if s.R {
		res |= 1 << 5
	}
	if s.V {
		res |= 1 << 6
	}
	if s.N {
		res |= 1 << 7
	}
	return res
}

func (s *status) decodeFrom(data byte) {
	s.C = data&(1<<0) != 0
	s.Z = data&(1<<1) != 0
	s.I = data&(1<<2) != 0
	s.D = data&(1<<3) != 0
	s.B = data&(1<<4) != 0
	s.R = data&(1<<5) != 0
	s.V = data&(1<<6) != 0
	s.N = data&(1<<7) != 0
}

// CPU holds registers and dispatches the fetch/decode/execute cycle.
type CPU struct {
	P  status
	A  byte
	X  byte
	Y  byte
	PC uint16
	S  byte

	bus *Bus

	stall      int
	nmiPending bool

	// extraCycles accumulates branch-taken / branch-page-cross penalties
	// signaled by an execute function during a single Step call.
	extraCycles int

	// lastOpcode/lastPC/lastOperand/lastMode record the most recently
	// executed instruction; Dump shows them (Tracer does not read them).
	lastOpcode  byte
	lastPC      uint16
	lastOperand uint16
	lastMode    addressingMode
}

// NewCPU creates a CPU wired to bus. The caller must still call Reset
// (Emulator.Reset does this) before stepping; Reset itself charges the
// bus clock for the reset sequence's 7 cycles, and doing that twice would
// throw off every subsequent CYC trace column.
func NewCPU(bus *Bus) *CPU {
	return &CPU{bus: bus}
}

// Reset loads PC from the reset vector and sets the documented power-on
// register state. The reset sequence itself burns 7 CPU cycles on real
// hardware (spec §3), so the bus cycle counter is charged up front.
func (c *CPU) Reset() {
	c.PC = c.bus.Read16(0xFFFC)
	c.S = 0xFD
	c.P.decodeFrom(0x24)
	c.bus.Tick(7)
}

func (c *CPU) setN(x byte) { c.P.N = x&0x80 != 0 }
func (c *CPU) setZ(x byte) { c.P.Z = x == 0 }

func (c *CPU) push(x byte) {
	c.bus.Write(0x100|uint16(c.S), x)
	c.S--
}

func (c *CPU) pop() byte {
	c.S++
	return c.bus.Read(0x100 | uint16(c.S))
}

func (c *CPU) pushWord(x uint16) {
	c.push(byte(x >> 8))
	c.push(byte(x))
}

func (c *CPU) popWord() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

// branch moves PC to target and records the branch-taken / page-cross
// cycle penalties in extraCycles, if cond holds. PC at call time is the
// address right after the two-byte branch instruction.
func (c *CPU) branch(cond bool, target uint16) {
	if !cond {
		return
	}
	c.extraCycles++
	if c.PC&0xFF00 != target&0xFF00 {
		c.extraCycles++
	}
	c.PC = target
}

// resolveOperand computes the effective address for mode, reading operand
// bytes from the two bytes following the opcode at c.PC. c.PC must not have
// advanced past the opcode yet. Returns the effective address (meaningless
// for modeImplied/modeAccumulator) and whether indexing crossed a page.
func (c *CPU) resolveOperand(mode addressingMode) (uint16, bool) {
	switch mode {
	case modeImplied, modeAccumulator:
		return 0, false
	case modeImmediate:
		return c.PC + 1, false
	case modeZeroPage:
		return uint16(c.bus.Read(c.PC + 1)), false
	case modeZeroPageX:
		return uint16(c.bus.Read(c.PC+1) + c.X), false
	case modeZeroPageY:
		return uint16(c.bus.Read(c.PC+1) + c.Y), false
	case modeRelative:
		offset := c.bus.Read(c.PC + 1)
		if offset < 0x80 {
			return c.PC + 2 + uint16(offset), false
		}
		return c.PC + 2 + uint16(offset) - 0x100, false
	case modeAbsolute:
		return c.bus.Read16(c.PC + 1), false
	case modeAbsoluteX:
		base := c.bus.Read16(c.PC + 1)
		addr := base + uint16(c.X)
		return addr, base&0xFF00 != addr&0xFF00
	case modeAbsoluteY:
		base := c.bus.Read16(c.PC + 1)
		addr := base + uint16(c.Y)
		return addr, base&0xFF00 != addr&0xFF00
	case modeIndirect:
		// JMP only. Emulates the well-known page-wrap bug: if the
		// pointer's low byte is 0xFF, the high byte is fetched from
		// ptr & 0xFF00 instead of ptr + 1.
		ptr := c.bus.Read16(c.PC + 1)
		lo := uint16(c.bus.Read(ptr))
		var hi uint16
		if ptr&0x00FF == 0x00FF {
			hi = uint16(c.bus.Read(ptr & 0xFF00))
		} else {
			hi = uint16(c.bus.Read(ptr + 1))
		}
		return hi<<8 | lo, false
	case modeIndirectX:
		zp := c.bus.Read(c.PC+1) + c.X
		lo := uint16(c.bus.Read(uint16(zp)))
		hi := uint16(c.bus.Read(uint16(zp + 1)))
		return hi<<8 | lo, false
	case modeIndirectY:
		zp := c.bus.Read(c.PC + 1)
		lo := uint16(c.bus.Read(uint16(zp)))
		hi := uint16(c.bus.Read(uint16(zp + 1)))
		base := hi<<8 | lo
		addr := base + uint16(c.Y)
		return addr, base&0xFF00 != addr&0xFF00
	}
	return 0, false
}

// willServiceNMI reports whether the next Step call will do nothing but
// service a pending NMI, rather than fetch/execute an instruction. The
// caller uses this to poll the NMI ahead of tracing, matching the
// original's top-of-loop NMI check (spec §4.3 step 1), so the preempted
// instruction is never traced and the handler's first instruction is
// traced exactly once.
func (c *CPU) willServiceNMI() bool {
	return c.stall == 0 && c.nmiPending
}

// Step runs exactly one instruction-cycle step: interrupt/stall handling,
// or a fetch-decode-execute of one opcode. Returns the CPU cycles
// consumed. Reference: spec §4.3 "Instruction cycle".
func (c *CPU) Step() int {
	if c.stall > 0 {
		c.stall--
		c.bus.Tick(1)
		return 1
	}
	if c.nmiPending {
		c.nmiPending = false
		c.serviceNMI()
		if c.bus.Tick(2) {
			c.nmiPending = true
		}
		return 2
	}

	opcode := c.bus.Read(c.PC)
	inst := &opcodeTable[opcode]

	operand, pageCrossed := c.resolveOperand(inst.mode)

	c.lastPC = c.PC
	c.lastOpcode = opcode
	c.lastOperand = operand
	c.lastMode = inst.mode

	c.PC += inst.size
	c.extraCycles = 0
	inst.execute(c, inst.mode, operand)

	cycles := inst.cycles + c.extraCycles
	if inst.extraOnPageCross && pageCrossed {
		cycles++
	}

	if c.bus.Tick(cycles) {
		c.nmiPending = true
	}
	return cycles
}

// serviceNMI pushes PC and status (B cleared, R set) and jumps to the NMI
// vector. Reference: spec §4.3 step 1.
func (c *CPU) serviceNMI() {
	c.pushWord(c.PC)
	c.P.B = false
	c.P.R = true
	c.push(c.P.encode())
	c.P.I = true
	c.PC = c.bus.Read16(0xFFFA)
}

// write performs a CPU-initiated memory write. Bus.Write already performs
// the OAM-DMA byte copy when address is $4014; this wrapper additionally
// books the CPU stall that transfer costs (spec §4.2 "S4 - OAM-DMA").
func (c *CPU) write(address uint16, data byte) {
	c.bus.Write(address, data)
	if address == 0x4014 {
		c.stall += 513
	}
}
