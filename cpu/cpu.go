// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"log"

	"github.com/ezrec/sap1/display"
)

// Display is the device attached to the output latch.
type Display = display.Display

// Cpu is the simulation context for a single SAP-1 machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Microcode *Microcode // Control word ROM.
	Image     Image      // Memory contents at reset.

	Memory      Image  // Memory.
	A           uint8  // A register.
	B           uint8  // B register.
	Ir          uint8  // Instruction register.
	Pc          uint8  // Program counter, 0..15.
	Mar         uint8  // Memory address register, 0..15.
	Bus         uint8  // Last value driven onto the bus.
	AluResult   uint8  // Last value computed by the ALU.
	Out         uint8  // Output latch.
	ControlWord Signal // Control word of the last micro-step.
	Flags       Flags  // Flags register.
	Phase       Phase  // Phase of the next micro-step.
	Halted      bool   // Set once a HLT control word has executed.

	Ticks        int // Micro-steps executed since reset.
	Instructions int // Instructions completed since reset.

	display Display // Output latch device.
}

// NewCpu creates a new CPU, reset to run the image.
func NewCpu(image Image) (cpu *Cpu) {
	cpu = &Cpu{
		Microcode: _microcode,
		Image:     image,
	}

	cpu.Reset()

	return
}

// SetDisplay attaches a device to the output latch. A nil device detaches
// the current one.
func (cpu *Cpu) SetDisplay(device Display) {
	cpu.display = device
}

// Reset the CPU state.
// - Reloads memory from the image.
// - Clears the registers, bus, flags, and output latch.
// - Zeros statistics counters.
// - Restarts at the first fetch phase of address 0.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Memory = cpu.Image
	cpu.A = 0
	cpu.B = 0
	cpu.Ir = 0
	cpu.Pc = 0
	cpu.Mar = 0
	cpu.Bus = 0
	cpu.AluResult = 0
	cpu.Out = 0
	cpu.ControlWord = 0
	cpu.Flags = 0
	cpu.Phase = PHASE_FETCH0
	cpu.Halted = false
	cpu.Ticks = 0
	cpu.Instructions = 0
}

// Opcode returns the opcode in the instruction register.
func (cpu *Cpu) Opcode() Opcode {
	op, _ := Decode(cpu.Ir)
	return op
}

// Step executes a single micro-step, and returns true once the machine
// has halted. Steps after a halt have no effect.
func (cpu *Cpu) Step() (halted bool) {
	if cpu.Halted {
		return true
	}

	op := cpu.Opcode()
	cw, last := cpu.Microcode.Lookup(op, cpu.Phase, cpu.Flags)

	if cpu.Verbose {
		log.Printf("cpu: %X %v %v: %v", cpu.Pc, cpu.Phase, op, cw)
	}

	cpu.ControlWord = cw
	cpu.Ticks++

	if cw.Has(CW_HLT) {
		cpu.Halted = true
		if cpu.Verbose {
			log.Printf("cpu: halted")
		}
		return true
	}

	flags, ok := cpu.alu(cw)
	cpu.transfer(cw)
	cpu.clock(cw)
	if ok && cw.Has(CW_FI) {
		cpu.Flags = flags
	}

	if last {
		cpu.Phase = PHASE_FETCH0
		cpu.Instructions++
	} else {
		cpu.Phase++
	}

	return false
}

// alu evaluates the ALU over A and B if its output is enabled, and returns
// the flags it would latch.
func (cpu *Cpu) alu(cw Signal) (flags Flags, ok bool) {
	if !cw.Has(CW_EO) {
		return
	}

	cpu.AluResult, flags = Alu(cpu.A, cpu.B, cw.Has(CW_SU))

	return flags, true
}

// transfer drives the bus, then latches the bus into the enabled
// destinations.
func (cpu *Cpu) transfer(cw Signal) {
	// Drivers
	if cw.Has(CW_RO) {
		cpu.Bus = cpu.Memory[cpu.Mar&ADDRESS_MASK]
	}
	if cw.Has(CW_AO) {
		cpu.Bus = cpu.A
	}
	if cw.Has(CW_IO) {
		cpu.Bus = cpu.Ir & OPERAND_MASK
	}
	if cw.Has(CW_CO) {
		cpu.Bus = cpu.Pc & ADDRESS_MASK
	}
	if cw.Has(CW_EO) {
		cpu.Bus = cpu.AluResult
	}

	// Latches
	if cw.Has(CW_MI) {
		cpu.Mar = cpu.Bus & ADDRESS_MASK
	}
	if cw.Has(CW_RI) {
		cpu.Memory[cpu.Mar&ADDRESS_MASK] = cpu.Bus
	}
	if cw.Has(CW_AI) {
		cpu.A = cpu.Bus
	}
	if cw.Has(CW_BI) {
		cpu.B = cpu.Bus
	}
	if cw.Has(CW_II) {
		cpu.Ir = cpu.Bus
	}
	if cw.Has(CW_OI) {
		cpu.Out = cpu.Bus
		if cpu.display != nil {
			cpu.display.Latch(cpu.Out)
		}
	}
}

// clock advances or loads the program counter. A jump takes precedence
// over an increment.
func (cpu *Cpu) clock(cw Signal) {
	if cw.Has(CW_CE) {
		cpu.Pc = (cpu.Pc + 1) & ADDRESS_MASK
	}
	if cw.Has(CW_JP) {
		cpu.Pc = cpu.Bus & ADDRESS_MASK
	}
}

// State returns a snapshot of the CPU state.
func (cpu *Cpu) State() State {
	return State{
		Memory:       cpu.Memory,
		A:            cpu.A,
		B:            cpu.B,
		Ir:           cpu.Ir,
		Pc:           cpu.Pc,
		Mar:          cpu.Mar,
		Bus:          cpu.Bus,
		AluResult:    cpu.AluResult,
		Out:          cpu.Out,
		ControlWord:  cpu.ControlWord,
		Flags:        cpu.Flags,
		Phase:        cpu.Phase,
		Halted:       cpu.Halted,
		Ticks:        cpu.Ticks,
		Instructions: cpu.Instructions,
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() string {
	return cpu.State().String()
}
