// Command nesgo runs an iNES ROM through a window and speaker.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"

	"github.com/kohei-sano/nesgo/nes"
	"github.com/kohei-sano/nesgo/speaker"
	"github.com/kohei-sano/nesgo/ui"
)

const (
	windowWidth  = 256 * 3
	windowHeight = 240 * 3
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES (.nes) ROM file (may also be given as the positional argument)")
	trace := flag.Bool("trace", false, "log a nestest.log-format trace of every step through glog at INFO level")
	flag.Parse()

	if *romPath == "" && flag.NArg() > 0 {
		*romPath = flag.Arg(0)
	}
	if *romPath == "" {
		glog.Exit("usage: nesgo [-trace] <path.nes>")
	}

	data, err := os.ReadFile(*romPath)
	if err != nil {
		glog.Exitf("failed to read %s: %v", *romPath, err)
	}
	cart, err := nes.NewCartridge(data)
	if err != nil {
		glog.Exitf("failed to load %s: %v", *romPath, err)
	}

	win, err := ui.NewWindow(windowWidth, windowHeight)
	if err != nil {
		glog.Exitf("failed to open window: %v", err)
	}
	defer win.Close()

	dev := speaker.NewDevice()
	if err := dev.Start(); err != nil {
		glog.Exitf("failed to start audio: %v", err)
	}
	defer dev.Terminate()

	emu := nes.NewEmulator(cart, win, dev, win)
	emu.Reset()
	if *trace {
		emu.EnableTrace(func(line string) { glog.Info(line) })
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	for !win.ShouldClose() {
		select {
		case <-done:
			return
		default:
			emu.Step()
		}
	}
}
