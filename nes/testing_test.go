package nes

// newTestCartridge builds a minimal NROM-128 iNES image with prg as the
// program bytes starting at $8000 (mirrored through to $FFFF, including the
// reset vector at $FFFC unless prg overrides it). Grounded on
// jyane-jnes/cpu_test.go's createTestCPU, which pokes a reset vector
// directly into a raw PRG byte slice rather than depending on an on-disk
// ROM fixture.
func newTestCartridge(prg []byte) *Cartridge {
	data := make([]byte, 16+16384)
	copy(data, inesMagic[:])
	data[4] = 1 // 1x16KiB PRG page
	data[5] = 0 // CHR-RAM
	copy(data[16:], prg)
	// Default reset vector to $8000 unless the caller already set it.
	if data[16+0x3FFC] == 0 && data[16+0x3FFD] == 0 {
		data[16+0x3FFC] = 0x00
		data[16+0x3FFD] = 0x80
	}
	cart, err := NewCartridge(data)
	if err != nil {
		panic(err)
	}
	return cart
}

// newTestEmulator wires a headless Emulator (no Renderer/Speaker/JoypadSource)
// around prg, with PC already sitting at the start of prg via the reset
// vector.
func newTestEmulator(prg []byte) *Emulator {
	cart := newTestCartridge(prg)
	e := NewEmulator(cart, nil, nil, nil)
	e.Reset()
	return e
}
