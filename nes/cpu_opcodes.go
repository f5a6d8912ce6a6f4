package nes

// instruction is one entry of the 256-slot opcode table: mnemonic (for the
// tracer), addressing mode, encoded size in bytes, base cycle count, and
// whether indexed read addressing gets +1 on a page cross. undocumented
// marks the handful of illegal opcodes the tracer prefixes with `*`.
type instruction struct {
	mnemonic         string
	mode             addressingMode
	size             uint16
	cycles           int
	extraOnPageCross bool
	undocumented     bool
	execute          func(*CPU, addressingMode, uint16)
}

func op(mnemonic string, mode addressingMode, size uint16, cycles int, execute func(*CPU, addressingMode, uint16)) instruction {
	return instruction{mnemonic: mnemonic, mode: mode, size: size, cycles: cycles, execute: execute}
}

func opPage(mnemonic string, mode addressingMode, size uint16, cycles int, execute func(*CPU, addressingMode, uint16)) instruction {
	i := op(mnemonic, mode, size, cycles, execute)
	i.extraOnPageCross = true
	return i
}

func opIllegal(mnemonic string, mode addressingMode, size uint16, cycles int, execute func(*CPU, addressingMode, uint16)) instruction {
	i := op(mnemonic, mode, size, cycles, execute)
	i.undocumented = true
	return i
}

func opIllegalPage(mnemonic string, mode addressingMode, size uint16, cycles int, execute func(*CPU, addressingMode, uint16)) instruction {
	i := opIllegal(mnemonic, mode, size, cycles, execute)
	i.extraOnPageCross = true
	return i
}

// opcodeTable is the full 256-entry 6502 dispatch table: every documented
// opcode plus the illegal opcodes real NES software relies on (LAX, SAX,
// DCP, ISB, SLO, RLA, SRE, RRA and the various NOP encodings).
var opcodeTable = [256]instruction{
	0x00: op("BRK", modeImplied, 1, 7, (*CPU).brk),
	0x01: op("ORA", modeIndirectX, 2, 6, (*CPU).ora),
	0x02: opIllegal("JAM", modeImplied, 1, 2, (*CPU).jam),
	0x03: opIllegal("SLO", modeIndirectX, 2, 8, (*CPU).slo),
	0x04: opIllegal("NOP", modeZeroPage, 2, 3, (*CPU).nop),
	0x05: op("ORA", modeZeroPage, 2, 3, (*CPU).ora),
	0x06: op("ASL", modeZeroPage, 2, 5, (*CPU).asl),
	0x07: opIllegal("SLO", modeZeroPage, 2, 5, (*CPU).slo),
	0x08: op("PHP", modeImplied, 1, 3, (*CPU).php),
	0x09: op("ORA", modeImmediate, 2, 2, (*CPU).ora),
	0x0A: op("ASL", modeAccumulator, 1, 2, (*CPU).asl),
	0x0B: opIllegal("ANC", modeImmediate, 2, 2, (*CPU).anc),
	0x0C: opIllegal("NOP", modeAbsolute, 3, 4, (*CPU).nop),
	0x0D: op("ORA", modeAbsolute, 3, 4, (*CPU).ora),
	0x0E: op("ASL", modeAbsolute, 3, 6, (*CPU).asl),
	0x0F: opIllegal("SLO", modeAbsolute, 3, 6, (*CPU).slo),

	0x10: op("BPL", modeRelative, 2, 2, (*CPU).bpl),
	0x11: opPage("ORA", modeIndirectY, 2, 5, (*CPU).ora),
	0x12: opIllegal("JAM", modeImplied, 1, 2, (*CPU).jam),
	0x13: opIllegal("SLO", modeIndirectY, 2, 8, (*CPU).slo),
	0x14: opIllegal("NOP", modeZeroPageX, 2, 4, (*CPU).nop),
	0x15: op("ORA", modeZeroPageX, 2, 4, (*CPU).ora),
	0x16: op("ASL", modeZeroPageX, 2, 6, (*CPU).asl),
	0x17: opIllegal("SLO", modeZeroPageX, 2, 6, (*CPU).slo),
	0x18: op("CLC", modeImplied, 1, 2, (*CPU).clc),
	0x19: opPage("ORA", modeAbsoluteY, 3, 4, (*CPU).ora),
	0x1A: opIllegal("NOP", modeImplied, 1, 2, (*CPU).nop),
	0x1B: opIllegal("SLO", modeAbsoluteY, 3, 7, (*CPU).slo),
	0x1C: opIllegalPage("NOP", modeAbsoluteX, 3, 4, (*CPU).nop),
	0x1D: opPage("ORA", modeAbsoluteX, 3, 4, (*CPU).ora),
	0x1E: op("ASL", modeAbsoluteX, 3, 7, (*CPU).asl),
	0x1F: opIllegal("SLO", modeAbsoluteX, 3, 7, (*CPU).slo),

	0x20: op("JSR", modeAbsolute, 3, 6, (*CPU).jsr),
	0x21: op("AND", modeIndirectX, 2, 6, (*CPU).and),
	0x22: opIllegal("JAM", modeImplied, 1, 2, (*CPU).jam),
	0x23: opIllegal("RLA", modeIndirectX, 2, 8, (*CPU).rla),
	0x24: op("BIT", modeZeroPage, 2, 3, (*CPU).bit),
	0x25: op("AND", modeZeroPage, 2, 3, (*CPU).and),
	0x26: op("ROL", modeZeroPage, 2, 5, (*CPU).rol),
	0x27: opIllegal("RLA", modeZeroPage, 2, 5, (*CPU).rla),
	0x28: op("PLP", modeImplied, 1, 4, (*CPU).plp),
	0x29: op("AND", modeImmediate, 2, 2, (*CPU).and),
	0x2A: op("ROL", modeAccumulator, 1, 2, (*CPU).rol),
	0x2B: opIllegal("ANC", modeImmediate, 2, 2, (*CPU).anc),
	0x2C: op("BIT", modeAbsolute, 3, 4, (*CPU).bit),
	0x2D: op("AND", modeAbsolute, 3, 4, (*CPU).and),
	0x2E: op("ROL", modeAbsolute, 3, 6, (*CPU).rol),
	0x2F: opIllegal("RLA", modeAbsolute, 3, 6, (*CPU).rla),

	0x30: op("BMI", modeRelative, 2, 2, (*CPU).bmi),
	0x31: opPage("AND", modeIndirectY, 2, 5, (*CPU).and),
	0x32: opIllegal("JAM", modeImplied, 1, 2, (*CPU).jam),
	0x33: opIllegal("RLA", modeIndirectY, 2, 8, (*CPU).rla),
	0x34: opIllegal("NOP", modeZeroPageX, 2, 4, (*CPU).nop),
	0x35: op("AND", modeZeroPageX, 2, 4, (*CPU).and),
	0x36: op("ROL", modeZeroPageX, 2, 6, (*CPU).rol),
	0x37: opIllegal("RLA", modeZeroPageX, 2, 6, (*CPU).rla),
	0x38: op("SEC", modeImplied, 1, 2, (*CPU).sec),
	0x39: opPage("AND", modeAbsoluteY, 3, 4, (*CPU).and),
	0x3A: opIllegal("NOP", modeImplied, 1, 2, (*CPU).nop),
	0x3B: opIllegal("RLA", modeAbsoluteY, 3, 7, (*CPU).rla),
	0x3C: opIllegalPage("NOP", modeAbsoluteX, 3, 4, (*CPU).nop),
	0x3D: opPage("AND", modeAbsoluteX, 3, 4, (*CPU).and),
	0x3E: op("ROL", modeAbsoluteX, 3, 7, (*CPU).rol),
	0x3F: opIllegal("RLA", modeAbsoluteX, 3, 7, (*CPU).rla),

	0x40: op("RTI", modeImplied, 1, 6, (*CPU).rti),
	0x41: op("EOR", modeIndirectX, 2, 6, (*CPU).eor),
	0x42: opIllegal("JAM", modeImplied, 1, 2, (*CPU).jam),
	0x43: opIllegal("SRE", modeIndirectX, 2, 8, (*CPU).sre),
	0x44: opIllegal("NOP", modeZeroPage, 2, 3, (*CPU).nop),
	0x45: op("EOR", modeZeroPage, 2, 3, (*CPU).eor),
	0x46: op("LSR", modeZeroPage, 2, 5, (*CPU).lsr),
	0x47: opIllegal("SRE", modeZeroPage, 2, 5, (*CPU).sre),
	0x48: op("PHA", modeImplied, 1, 3, (*CPU).pha),
	0x49: op("EOR", modeImmediate, 2, 2, (*CPU).eor),
	0x4A: op("LSR", modeAccumulator, 1, 2, (*CPU).lsr),
	0x4B: opIllegal("ALR", modeImmediate, 2, 2, (*CPU).alr),
	0x4C: op("JMP", modeAbsolute, 3, 3, (*CPU).jmp),
	0x4D: op("EOR", modeAbsolute, 3, 4, (*CPU).eor),
	0x4E: op("LSR", modeAbsolute, 3, 6, (*CPU).lsr),
	0x4F: opIllegal("SRE", modeAbsolute, 3, 6, (*CPU).sre),

	0x50: op("BVC", modeRelative, 2, 2, (*CPU).bvc),
	0x51: opPage("EOR", modeIndirectY, 2, 5, (*CPU).eor),
	0x52: opIllegal("JAM", modeImplied, 1, 2, (*CPU).jam),
	0x53: opIllegal("SRE", modeIndirectY, 2, 8, (*CPU).sre),
	0x54: opIllegal("NOP", modeZeroPageX, 2, 4, (*CPU).nop),
	0x55: op("EOR", modeZeroPageX, 2, 4, (*CPU).eor),
	0x56: op("LSR", modeZeroPageX, 2, 6, (*CPU).lsr),
	0x57: opIllegal("SRE", modeZeroPageX, 2, 6, (*CPU).sre),
	0x58: op("CLI", modeImplied, 1, 2, (*CPU).cli),
	0x59: opPage("EOR", modeAbsoluteY, 3, 4, (*CPU).eor),
	0x5A: opIllegal("NOP", modeImplied, 1, 2, (*CPU).nop),
	0x5B: opIllegal("SRE", modeAbsoluteY, 3, 7, (*CPU).sre),
	0x5C: opIllegalPage("NOP", modeAbsoluteX, 3, 4, (*CPU).nop),
	0x5D: opPage("EOR", modeAbsoluteX, 3, 4, (*CPU).eor),
	0x5E: op("LSR", modeAbsoluteX, 3, 7, (*CPU).lsr),
	0x5F: opIllegal("SRE", modeAbsoluteX, 3, 7, (*CPU).sre),

	0x60: op("RTS", modeImplied, 1, 6, (*CPU).rts),
	0x61: op("ADC", modeIndirectX, 2, 6, (*CPU).adc),
	0x62: opIllegal("JAM", modeImplied, 1, 2, (*CPU).jam),
	0x63: opIllegal("RRA", modeIndirectX, 2, 8, (*CPU).rra),
	0x64: opIllegal("NOP", modeZeroPage, 2, 3, (*CPU).nop),
	0x65: op("ADC", modeZeroPage, 2, 3, (*CPU).adc),
	0x66: op("ROR", modeZeroPage, 2, 5, (*CPU).ror),
	0x67: opIllegal("RRA", modeZeroPage, 2, 5, (*CPU).rra),
	0x68: op("PLA", modeImplied, 1, 4, (*CPU).pla),
	0x69: op("ADC", modeImmediate, 2, 2, (*CPU).adc),
	0x6A: op("ROR", modeAccumulator, 1, 2, (*CPU).ror),
	0x6B: opIllegal("ARR", modeImmediate, 2, 2, (*CPU).arr),
	0x6C: op("JMP", modeIndirect, 3, 5, (*CPU).jmp),
	0x6D: op("ADC", modeAbsolute, 3, 4, (*CPU).adc),
	0x6E: op("ROR", modeAbsolute, 3, 6, (*CPU).ror),
	0x6F: opIllegal("RRA", modeAbsolute, 3, 6, (*CPU).rra),

	0x70: op("BVS", modeRelative, 2, 2, (*CPU).bvs),
	0x71: opPage("ADC", modeIndirectY, 2, 5, (*CPU).adc),
	0x72: opIllegal("JAM", modeImplied, 1, 2, (*CPU).jam),
	0x73: opIllegal("RRA", modeIndirectY, 2, 8, (*CPU).rra),
	0x74: opIllegal("NOP", modeZeroPageX, 2, 4, (*CPU).nop),
	0x75: op("ADC", modeZeroPageX, 2, 4, (*CPU).adc),
	0x76: op("ROR", modeZeroPageX, 2, 6, (*CPU).ror),
	0x77: opIllegal("RRA", modeZeroPageX, 2, 6, (*CPU).rra),
	0x78: op("SEI", modeImplied, 1, 2, (*CPU).sei),
	0x79: opPage("ADC", modeAbsoluteY, 3, 4, (*CPU).adc),
	0x7A: opIllegal("NOP", modeImplied, 1, 2, (*CPU).nop),
	0x7B: opIllegal("RRA", modeAbsoluteY, 3, 7, (*CPU).rra),
	0x7C: opIllegalPage("NOP", modeAbsoluteX, 3, 4, (*CPU).nop),
	0x7D: opPage("ADC", modeAbsoluteX, 3, 4, (*CPU).adc),
	0x7E: op("ROR", modeAbsoluteX, 3, 7, (*CPU).ror),
	0x7F: opIllegal("RRA", modeAbsoluteX, 3, 7, (*CPU).rra),

	0x80: opIllegal("NOP", modeImmediate, 2, 2, (*CPU).nop),
	0x81: op("STA", modeIndirectX, 2, 6, (*CPU).sta),
	0x82: opIllegal("NOP", modeImmediate, 2, 2, (*CPU).nop),
	0x83: opIllegal("SAX", modeIndirectX, 2, 6, (*CPU).sax),
	0x84: op("STY", modeZeroPage, 2, 3, (*CPU).sty),
	0x85: op("STA", modeZeroPage, 2, 3, (*CPU).sta),
	0x86: op("STX", modeZeroPage, 2, 3, (*CPU).stx),
	0x87: opIllegal("SAX", modeZeroPage, 2, 3, (*CPU).sax),
	0x88: op("DEY", modeImplied, 1, 2, (*CPU).dey),
	0x89: opIllegal("NOP", modeImmediate, 2, 2, (*CPU).nop),
	0x8A: op("TXA", modeImplied, 1, 2, (*CPU).txa),
	0x8B: opIllegal("XAA", modeImmediate, 2, 2, (*CPU).nop),
	0x8C: op("STY", modeAbsolute, 3, 4, (*CPU).sty),
	0x8D: op("STA", modeAbsolute, 3, 4, (*CPU).sta),
	0x8E: op("STX", modeAbsolute, 3, 4, (*CPU).stx),
	0x8F: opIllegal("SAX", modeAbsolute, 3, 4, (*CPU).sax),

	0x90: op("BCC", modeRelative, 2, 2, (*CPU).bcc),
	0x91: op("STA", modeIndirectY, 2, 6, (*CPU).sta),
	0x92: opIllegal("JAM", modeImplied, 1, 2, (*CPU).jam),
	0x93: opIllegal("SHA", modeIndirectY, 2, 6, (*CPU).nop),
	0x94: op("STY", modeZeroPageX, 2, 4, (*CPU).sty),
	0x95: op("STA", modeZeroPageX, 2, 4, (*CPU).sta),
	0x96: op("STX", modeZeroPageY, 2, 4, (*CPU).stx),
	0x97: opIllegal("SAX", modeZeroPageY, 2, 4, (*CPU).sax),
	0x98: op("TYA", modeImplied, 1, 2, (*CPU).tya),
	0x99: op("STA", modeAbsoluteY, 3, 5, (*CPU).sta),
	0x9A: op("TXS", modeImplied, 1, 2, (*CPU).txs),
	0x9B: opIllegal("TAS", modeAbsoluteY, 3, 5, (*CPU).nop),
	0x9C: opIllegal("SHY", modeAbsoluteX, 3, 5, (*CPU).nop),
	0x9D: op("STA", modeAbsoluteX, 3, 5, (*CPU).sta),
	0x9E: opIllegal("SHX", modeAbsoluteY, 3, 5, (*CPU).nop),
	0x9F: opIllegal("SHA", modeAbsoluteY, 3, 5, (*CPU).nop),

	0xA0: op("LDY", modeImmediate, 2, 2, (*CPU).ldy),
	0xA1: op("LDA", modeIndirectX, 2, 6, (*CPU).lda),
	0xA2: op("LDX", modeImmediate, 2, 2, (*CPU).ldx),
	0xA3: opIllegal("LAX", modeIndirectX, 2, 6, (*CPU).lax),
	0xA4: op("LDY", modeZeroPage, 2, 3, (*CPU).ldy),
	0xA5: op("LDA", modeZeroPage, 2, 3, (*CPU).lda),
	0xA6: op("LDX", modeZeroPage, 2, 3, (*CPU).ldx),
	0xA7: opIllegal("LAX", modeZeroPage, 2, 3, (*CPU).lax),
	0xA8: op("TAY", modeImplied, 1, 2, (*CPU).tay),
	0xA9: op("LDA", modeImmediate, 2, 2, (*CPU).lda),
	0xAA: op("TAX", modeImplied, 1, 2, (*CPU).tax),
	0xAB: opIllegal("LXA", modeImmediate, 2, 2, (*CPU).lax),
	0xAC: op("LDY", modeAbsolute, 3, 4, (*CPU).ldy),
	0xAD: op("LDA", modeAbsolute, 3, 4, (*CPU).lda),
	0xAE: op("LDX", modeAbsolute, 3, 4, (*CPU).ldx),
	0xAF: opIllegal("LAX", modeAbsolute, 3, 4, (*CPU).lax),

	0xB0: op("BCS", modeRelative, 2, 2, (*CPU).bcs),
	0xB1: opPage("LDA", modeIndirectY, 2, 5, (*CPU).lda),
	0xB2: opIllegal("JAM", modeImplied, 1, 2, (*CPU).jam),
	0xB3: opIllegalPage("LAX", modeIndirectY, 2, 5, (*CPU).lax),
	0xB4: op("LDY", modeZeroPageX, 2, 4, (*CPU).ldy),
	0xB5: op("LDA", modeZeroPageX, 2, 4, (*CPU).lda),
	0xB6: op("LDX", modeZeroPageY, 2, 4, (*CPU).ldx),
	0xB7: opIllegal("LAX", modeZeroPageY, 2, 4, (*CPU).lax),
	0xB8: op("CLV", modeImplied, 1, 2, (*CPU).clv),
	0xB9: opPage("LDA", modeAbsoluteY, 3, 4, (*CPU).lda),
	0xBA: op("TSX", modeImplied, 1, 2, (*CPU).tsx),
	0xBB: opIllegalPage("LAS", modeAbsoluteY, 3, 4, (*CPU).nop),
	0xBC: opPage("LDY", modeAbsoluteX, 3, 4, (*CPU).ldy),
	0xBD: opPage("LDA", modeAbsoluteX, 3, 4, (*CPU).lda),
	0xBE: opPage("LDX", modeAbsoluteY, 3, 4, (*CPU).ldx),
	0xBF: opIllegalPage("LAX", modeAbsoluteY, 3, 4, (*CPU).lax),

	0xC0: op("CPY", modeImmediate, 2, 2, (*CPU).cpy),
	0xC1: op("CMP", modeIndirectX, 2, 6, (*CPU).cmp),
	0xC2: opIllegal("NOP", modeImmediate, 2, 2, (*CPU).nop),
	0xC3: opIllegal("DCP", modeIndirectX, 2, 8, (*CPU).dcp),
	0xC4: op("CPY", modeZeroPage, 2, 3, (*CPU).cpy),
	0xC5: op("CMP", modeZeroPage, 2, 3, (*CPU).cmp),
	0xC6: op("DEC", modeZeroPage, 2, 5, (*CPU).dec),
	0xC7: opIllegal("DCP", modeZeroPage, 2, 5, (*CPU).dcp),
	0xC8: op("INY", modeImplied, 1, 2, (*CPU).iny),
	0xC9: op("CMP", modeImmediate, 2, 2, (*CPU).cmp),
	0xCA: op("DEX", modeImplied, 1, 2, (*CPU).dex),
	0xCB: opIllegal("AXS", modeImmediate, 2, 2, (*CPU).axs),
	0xCC: op("CPY", modeAbsolute, 3, 4, (*CPU).cpy),
	0xCD: op("CMP", modeAbsolute, 3, 4, (*CPU).cmp),
	0xCE: op("DEC", modeAbsolute, 3, 6, (*CPU).dec),
	0xCF: opIllegal("DCP", modeAbsolute, 3, 6, (*CPU).dcp),

	0xD0: op("BNE", modeRelative, 2, 2, (*CPU).bne),
	0xD1: opPage("CMP", modeIndirectY, 2, 5, (*CPU).cmp),
	0xD2: opIllegal("JAM", modeImplied, 1, 2, (*CPU).jam),
	0xD3: opIllegal("DCP", modeIndirectY, 2, 8, (*CPU).dcp),
	0xD4: opIllegal("NOP", modeZeroPageX, 2, 4, (*CPU).nop),
	0xD5: op("CMP", modeZeroPageX, 2, 4, (*CPU).cmp),
	0xD6: op("DEC", modeZeroPageX, 2, 6, (*CPU).dec),
	0xD7: opIllegal("DCP", modeZeroPageX, 2, 6, (*CPU).dcp),
	0xD8: op("CLD", modeImplied, 1, 2, (*CPU).cld),
	0xD9: opPage("CMP", modeAbsoluteY, 3, 4, (*CPU).cmp),
	0xDA: opIllegal("NOP", modeImplied, 1, 2, (*CPU).nop),
	0xDB: opIllegal("DCP", modeAbsoluteY, 3, 7, (*CPU).dcp),
	0xDC: opIllegalPage("NOP", modeAbsoluteX, 3, 4, (*CPU).nop),
	0xDD: opPage("CMP", modeAbsoluteX, 3, 4, (*CPU).cmp),
	0xDE: op("DEC", modeAbsoluteX, 3, 7, (*CPU).dec),
	0xDF: opIllegal("DCP", modeAbsoluteX, 3, 7, (*CPU).dcp),

	0xE0: op("CPX", modeImmediate, 2, 2, (*CPU).cpx),
	0xE1: op("SBC", modeIndirectX, 2, 6, (*CPU).sbc),
	0xE2: opIllegal("NOP", modeImmediate, 2, 2, (*CPU).nop),
	0xE3: opIllegal("ISB", modeIndirectX, 2, 8, (*CPU).isb),
	0xE4: op("CPX", modeZeroPage, 2, 3, (*CPU).cpx),
	0xE5: op("SBC", modeZeroPage, 2, 3, (*CPU).sbc),
	0xE6: op("INC", modeZeroPage, 2, 5, (*CPU).inc),
	0xE7: opIllegal("ISB", modeZeroPage, 2, 5, (*CPU).isb),
	0xE8: op("INX", modeImplied, 1, 2, (*CPU).inx),
	0xE9: op("SBC", modeImmediate, 2, 2, (*CPU).sbc),
	0xEA: op("NOP", modeImplied, 1, 2, (*CPU).nop),
	0xEB: opIllegal("SBC", modeImmediate, 2, 2, (*CPU).sbc),
	0xEC: op("CPX", modeAbsolute, 3, 4, (*CPU).cpx),
	0xED: op("SBC", modeAbsolute, 3, 4, (*CPU).sbc),
	0xEE: op("INC", modeAbsolute, 3, 6, (*CPU).inc),
	0xEF: opIllegal("ISB", modeAbsolute, 3, 6, (*CPU).isb),

	0xF0: op("BEQ", modeRelative, 2, 2, (*CPU).beq),
	0xF1: opPage("SBC", modeIndirectY, 2, 5, (*CPU).sbc),
	0xF2: opIllegal("JAM", modeImplied, 1, 2, (*CPU).jam),
	0xF3: opIllegal("ISB", modeIndirectY, 2, 8, (*CPU).isb),
	0xF4: opIllegal("NOP", modeZeroPageX, 2, 4, (*CPU).nop),
	0xF5: op("SBC", modeZeroPageX, 2, 4, (*CPU).sbc),
	0xF6: op("INC", modeZeroPageX, 2, 6, (*CPU).inc),
	0xF7: opIllegal("ISB", modeZeroPageX, 2, 6, (*CPU).isb),
	0xF8: op("SED", modeImplied, 1, 2, (*CPU).sed),
	0xF9: opPage("SBC", modeAbsoluteY, 3, 4, (*CPU).sbc),
	0xFA: opIllegal("NOP", modeImplied, 1, 2, (*CPU).nop),
	0xFB: opIllegal("ISB", modeAbsoluteY, 3, 7, (*CPU).isb),
	0xFC: opIllegalPage("NOP", modeAbsoluteX, 3, 4, (*CPU).nop),
	0xFD: opPage("SBC", modeAbsoluteX, 3, 4, (*CPU).sbc),
	0xFE: op("INC", modeAbsoluteX, 3, 7, (*CPU).inc),
	0xFF: opIllegal("ISB", modeAbsoluteX, 3, 7, (*CPU).isb),
}

// --- documented opcodes ----------------------------------------------

func (c *CPU) adc(mode addressingMode, operand uint16) {
	c.addWithCarry(c.bus.Read(operand))
}

// addWithCarry is shared by ADC, SBC and the illegal ISB/RRA opcodes that
// reduce to an add. Overflow is the standard "both operands share a sign
// and the result differs from it" test (fixed from the teacher's
// operator-precedence bug: `x^y&0x80` evaluates `y&0x80` before the xor).
func (c *CPU) addWithCarry(y byte) {
	x := c.A
	var carry uint16 = 0
	if c.P.C {
		carry = 1
	}
	res := uint16(x) + uint16(y) + carry
	c.P.C = res > 0xFF
	sum := byte(res)
	c.P.V = (x^y)&0x80 == 0 && (x^sum)&0x80 != 0
	c.A = sum
	c.setN(c.A)
	c.setZ(c.A)
}

func (c *CPU) and(mode addressingMode, operand uint16) {
	c.A &= c.bus.Read(operand)
	c.setN(c.A)
	c.setZ(c.A)
}

func (c *CPU) asl(mode addressingMode, operand uint16) {
	if mode == modeAccumulator {
		c.P.C = c.A&0x80 != 0
		c.A <<= 1
		c.setN(c.A)
		c.setZ(c.A)
		return
	}
	x := c.bus.Read(operand)
	c.P.C = x&0x80 != 0
	x <<= 1
	c.write(operand, x)
	c.setN(x)
	c.setZ(x)
}

func (c *CPU) bcc(mode addressingMode, operand uint16) { c.branch(!c.P.C, operand) }
func (c *CPU) bcs(mode addressingMode, operand uint16) { c.branch(c.P.C, operand) }
func (c *CPU) beq(mode addressingMode, operand uint16) { c.branch(c.P.Z, operand) }

func (c *CPU) bit(mode addressingMode, operand uint16) {
	x := c.bus.Read(operand)
	c.P.Z = c.A&x == 0
	c.P.V = x&0x40 != 0
	c.P.N = x&0x80 != 0
}

func (c *CPU) bmi(mode addressingMode, operand uint16) { c.branch(c.P.N, operand) }
func (c *CPU) bne(mode addressingMode, operand uint16) { c.branch(!c.P.Z, operand) }
func (c *CPU) bpl(mode addressingMode, operand uint16) { c.branch(!c.P.N, operand) }

func (c *CPU) brk(mode addressingMode, operand uint16) {
	c.pushWord(c.PC + 1)
	saved := c.P
	saved.B = true
	saved.R = true
	c.push(saved.encode())
	c.P.I = true
	c.PC = c.bus.Read16(0xFFFE)
}

func (c *CPU) bvc(mode addressingMode, operand uint16) { c.branch(!c.P.V, operand) }
func (c *CPU) bvs(mode addressingMode, operand uint16) { c.branch(c.P.V, operand) }

func (c *CPU) clc(mode addressingMode, operand uint16) { c.P.C = false }
func (c *CPU) cld(mode addressingMode, operand uint16) { c.P.D = false }
func (c *CPU) cli(mode addressingMode, operand uint16) { c.P.I = false }
func (c *CPU) clv(mode addressingMode, operand uint16) { c.P.V = false }

// compare is the shared CMP/CPX/CPY core: an unsigned subtract done in a
// wide type so the carry/negative/zero flags come out right regardless of
// sign (fixed from the teacher's `byte` subtraction, where `x >= 0` for an
// unsigned type is always true).
func (c *CPU) compare(reg, x byte) {
	res := int16(reg) - int16(x)
	c.P.C = reg >= x
	c.setZ(byte(res))
	c.setN(byte(res))
}

func (c *CPU) cmp(mode addressingMode, operand uint16) { c.compare(c.A, c.bus.Read(operand)) }
func (c *CPU) cpx(mode addressingMode, operand uint16) { c.compare(c.X, c.bus.Read(operand)) }
func (c *CPU) cpy(mode addressingMode, operand uint16) { c.compare(c.Y, c.bus.Read(operand)) }

func (c *CPU) dec(mode addressingMode, operand uint16) {
	x := c.bus.Read(operand) - 1
	c.write(operand, x)
	c.setN(x)
	c.setZ(x)
}

func (c *CPU) dex(mode addressingMode, operand uint16) {
	c.X--
	c.setN(c.X)
	c.setZ(c.X)
}

func (c *CPU) dey(mode addressingMode, operand uint16) {
	c.Y--
	c.setN(c.Y)
	c.setZ(c.Y)
}

func (c *CPU) eor(mode addressingMode, operand uint16) {
	c.A ^= c.bus.Read(operand)
	c.setN(c.A)
	c.setZ(c.A)
}

// inc increments memory (fixed from the teacher's version, which
// decremented: `x--` under a mnemonic of "INC").
func (c *CPU) inc(mode addressingMode, operand uint16) {
	x := c.bus.Read(operand) + 1
	c.write(operand, x)
	c.setN(x)
	c.setZ(x)
}

func (c *CPU) inx(mode addressingMode, operand uint16) {
	c.X++
	c.setN(c.X)
	c.setZ(c.X)
}

func (c *CPU) iny(mode addressingMode, operand uint16) {
	c.Y++
	c.setN(c.Y)
	c.setZ(c.Y)
}

func (c *CPU) jmp(mode addressingMode, operand uint16) { c.PC = operand }

func (c *CPU) jsr(mode addressingMode, operand uint16) {
	c.pushWord(c.PC - 1)
	c.PC = operand
}

func (c *CPU) lda(mode addressingMode, operand uint16) {
	c.A = c.bus.Read(operand)
	c.setN(c.A)
	c.setZ(c.A)
}

func (c *CPU) ldx(mode addressingMode, operand uint16) {
	c.X = c.bus.Read(operand)
	c.setN(c.X)
	c.setZ(c.X)
}

func (c *CPU) ldy(mode addressingMode, operand uint16) {
	c.Y = c.bus.Read(operand)
	c.setN(c.Y)
	c.setZ(c.Y)
}

func (c *CPU) lsr(mode addressingMode, operand uint16) {
	if mode == modeAccumulator {
		c.P.C = c.A&1 != 0
		c.A >>= 1
		c.setN(c.A)
		c.setZ(c.A)
		return
	}
	x := c.bus.Read(operand)
	c.P.C = x&1 != 0
	x >>= 1
	c.write(operand, x)
	c.setN(x)
	c.setZ(x)
}

func (c *CPU) nop(mode addressingMode, operand uint16) {}

func (c *CPU) ora(mode addressingMode, operand uint16) {
	c.A |= c.bus.Read(operand)
	c.setN(c.A)
	c.setZ(c.A)
}

func (c *CPU) pha(mode addressingMode, operand uint16) { c.push(c.A) }

func (c *CPU) php(mode addressingMode, operand uint16) {
	saved := c.P
	saved.B = true
	saved.R = true
	c.push(saved.encode())
}

func (c *CPU) pla(mode addressingMode, operand uint16) {
	c.A = c.pop()
	c.setN(c.A)
	c.setZ(c.A)
}

func (c *CPU) plp(mode addressingMode, operand uint16) {
	c.P.decodeFrom(c.pop())
	c.P.B = false
	c.P.R = true
}

func (c *CPU) rol(mode addressingMode, operand uint16) {
	var carry byte
	if c.P.C {
		carry = 1
	}
	if mode == modeAccumulator {
		c.P.C = c.A&0x80 != 0
		c.A = c.A<<1 | carry
		c.setN(c.A)
		c.setZ(c.A)
		return
	}
	x := c.bus.Read(operand)
	c.P.C = x&0x80 != 0
	x = x<<1 | carry
	c.write(operand, x)
	c.setN(x)
	c.setZ(x)
}

func (c *CPU) ror(mode addressingMode, operand uint16) {
	var carry byte
	if c.P.C {
		carry = 0x80
	}
	if mode == modeAccumulator {
		c.P.C = c.A&1 != 0
		c.A = c.A>>1 | carry
		c.setN(c.A)
		c.setZ(c.A)
		return
	}
	x := c.bus.Read(operand)
	c.P.C = x&1 != 0
	x = x>>1 | carry
	c.write(operand, x)
	c.setN(x)
	c.setZ(x)
}

func (c *CPU) rti(mode addressingMode, operand uint16) {
	c.P.decodeFrom(c.pop())
	c.P.B = false
	c.P.R = true
	c.PC = c.popWord()
}

func (c *CPU) rts(mode addressingMode, operand uint16) {
	c.PC = c.popWord() + 1
}

func (c *CPU) sbc(mode addressingMode, operand uint16) {
	// SBC is ADC with the operand's bits flipped; this is the classic
	// 6502 identity, and sidesteps duplicating the overflow logic.
	c.addWithCarry(^c.bus.Read(operand))
}

func (c *CPU) sec(mode addressingMode, operand uint16) { c.P.C = true }
func (c *CPU) sed(mode addressingMode, operand uint16) { c.P.D = true }
func (c *CPU) sei(mode addressingMode, operand uint16) { c.P.I = true }

func (c *CPU) sta(mode addressingMode, operand uint16) { c.write(operand, c.A) }
func (c *CPU) stx(mode addressingMode, operand uint16) { c.write(operand, c.X) }
func (c *CPU) sty(mode addressingMode, operand uint16) { c.write(operand, c.Y) }

func (c *CPU) tax(mode addressingMode, operand uint16) {
	c.X = c.A
	c.setN(c.X)
	c.setZ(c.X)
}

func (c *CPU) tay(mode addressingMode, operand uint16) {
	c.Y = c.A
	c.setN(c.Y)
	c.setZ(c.Y)
}

func (c *CPU) tsx(mode addressingMode, operand uint16) {
	c.X = c.S
	c.setN(c.X)
	c.setZ(c.X)
}

func (c *CPU) txa(mode addressingMode, operand uint16) {
	c.A = c.X
	c.setN(c.A)
	c.setZ(c.A)
}

func (c *CPU) txs(mode addressingMode, operand uint16) { c.S = c.X }

func (c *CPU) tya(mode addressingMode, operand uint16) {
	c.A = c.Y
	c.setN(c.A)
	c.setZ(c.A)
}

// --- undocumented opcodes ----------------------------------------------

// jam hangs the real CPU; here it is a no-op, since there's no reset
// switch to simulate and well-behaved ROMs never execute it.
func (c *CPU) jam(mode addressingMode, operand uint16) {}

func (c *CPU) lax(mode addressingMode, operand uint16) {
	c.A = c.bus.Read(operand)
	c.X = c.A
	c.setN(c.A)
	c.setZ(c.A)
}

func (c *CPU) sax(mode addressingMode, operand uint16) {
	c.write(operand, c.A&c.X)
}

func (c *CPU) dcp(mode addressingMode, operand uint16) {
	x := c.bus.Read(operand) - 1
	c.write(operand, x)
	c.compare(c.A, x)
}

func (c *CPU) isb(mode addressingMode, operand uint16) {
	x := c.bus.Read(operand) + 1
	c.write(operand, x)
	c.addWithCarry(^x)
}

func (c *CPU) slo(mode addressingMode, operand uint16) {
	x := c.bus.Read(operand)
	c.P.C = x&0x80 != 0
	x <<= 1
	c.write(operand, x)
	c.A |= x
	c.setN(c.A)
	c.setZ(c.A)
}

func (c *CPU) rla(mode addressingMode, operand uint16) {
	var carry byte
	if c.P.C {
		carry = 1
	}
	x := c.bus.Read(operand)
	c.P.C = x&0x80 != 0
	x = x<<1 | carry
	c.write(operand, x)
	c.A &= x
	c.setN(c.A)
	c.setZ(c.A)
}

func (c *CPU) sre(mode addressingMode, operand uint16) {
	x := c.bus.Read(operand)
	c.P.C = x&1 != 0
	x >>= 1
	c.write(operand, x)
	c.A ^= x
	c.setN(c.A)
	c.setZ(c.A)
}

func (c *CPU) rra(mode addressingMode, operand uint16) {
	var carry byte
	if c.P.C {
		carry = 0x80
	}
	x := c.bus.Read(operand)
	newCarry := x&1 != 0
	x = x>>1 | carry
	c.write(operand, x)
	c.P.C = newCarry
	c.addWithCarry(x)
}

func (c *CPU) anc(mode addressingMode, operand uint16) {
	c.A &= c.bus.Read(operand)
	c.setN(c.A)
	c.setZ(c.A)
	c.P.C = c.A&0x80 != 0
}

func (c *CPU) alr(mode addressingMode, operand uint16) {
	c.A &= c.bus.Read(operand)
	c.P.C = c.A&1 != 0
	c.A >>= 1
	c.setN(c.A)
	c.setZ(c.A)
}

func (c *CPU) arr(mode addressingMode, operand uint16) {
	c.A &= c.bus.Read(operand)
	carry := byte(0)
	if c.P.C {
		carry = 0x80
	}
	c.A = c.A>>1 | carry
	c.setN(c.A)
	c.setZ(c.A)
	c.P.C = c.A&0x40 != 0
	c.P.V = (c.A>>6)&1^(c.A>>5)&1 != 0
}

func (c *CPU) axs(mode addressingMode, operand uint16) {
	x := c.A & c.X
	val := c.bus.Read(operand)
	res := int16(x) - int16(val)
	c.P.C = x >= val
	c.X = byte(res)
	c.setN(c.X)
	c.setZ(c.X)
}
