// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs a SAP-1 CPU with its output display attached.
package emulator

import (
	"log"

	"github.com/ezrec/sap1/cpu"
	"github.com/ezrec/sap1/display"
)

const (
	TICK_LIMIT = 10000 // Default limit of micro-steps in a run.
)

// Emulator state. CPU + output display.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	Limit int // Micro-steps before a run fails; zero for no limit.

	Display  display.Writer   // Renders the output latch.
	Recorder display.Recorder // Records the output latch.
}

var _ display.Display = (*Emulator)(nil)

// Program returns the bundled program image by name.
func Program(name string) (image cpu.Image, err error) {
	image, ok := cpu.Programs[name]
	if !ok {
		err = ErrProgramUnknown(name)
	}
	return
}

// NewEmulator creates a new emulator running the image.
func NewEmulator(image cpu.Image) (emu *Emulator) {
	emu = &Emulator{
		Cpu:   cpu.NewCpu(image),
		Limit: TICK_LIMIT,
	}

	emu.Cpu.SetDisplay(emu)

	return
}

// Latch forwards the output latch to the display and recorder.
func (emu *Emulator) Latch(value uint8) {
	if emu.Verbose {
		log.Printf("emulator: out %d", value)
	}

	emu.Recorder.Latch(value)
	emu.Display.Latch(value)
}

// Reset the emulator state.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Recorder.Reset()
	emu.Display.Err = nil
}

// Tick performs a single micro-step of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	done = emu.Cpu.Step()
	if done {
		return
	}

	if emu.Limit > 0 && emu.Cpu.Ticks >= emu.Limit {
		err = &ErrRuntime{Pc: emu.Cpu.Pc, Ticks: emu.Cpu.Ticks, Err: ErrTickLimit}
	}

	return
}

// Run ticks the emulator until it halts, or fails.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return emu.Display.Err
}
