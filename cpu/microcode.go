// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"slices"
)

// Microcode is the control word ROM, addressed by flags and opcode. Each
// entry holds the control words of an instruction's phases, starting at T0;
// the last entry is the instruction's last phase.
type Microcode [FLAG_STATES][OPCODES][]Signal

// _fetch is the fetch sequence shared by all instructions.
var _fetch = []Signal{
	CW_CO | CW_MI,         // T0: MAR <- PC
	CW_RO | CW_II | CW_CE, // T1: IR <- RAM[MAR], PC++
}

// _microcode is the ROM used by all Cpu instances.
var _microcode = NewMicrocode()

// NewMicrocode builds the SAP-1 microcode ROM.
func NewMicrocode() (rom *Microcode) {
	rom = &Microcode{}

	for flags := range Flags(FLAG_STATES) {
		for op := range Opcode(OPCODES) {
			rom[flags][op] = slices.Concat(_fetch, execute(op, flags))
		}
	}

	return
}

// execute returns the T2 and later control words for an opcode.
func execute(op Opcode, flags Flags) []Signal {
	switch op {
	case OP_LDA:
		return []Signal{CW_IO | CW_MI, CW_RO | CW_AI}
	case OP_ADD:
		return []Signal{CW_IO | CW_MI, CW_RO | CW_BI, CW_EO | CW_AI | CW_FI}
	case OP_SUB:
		return []Signal{CW_IO | CW_MI, CW_RO | CW_BI, CW_EO | CW_BI | CW_FI | CW_SU}
	case OP_STA:
		return []Signal{CW_IO | CW_MI, CW_AO | CW_RI}
	case OP_LDI:
		return []Signal{CW_IO | CW_AI}
	case OP_JMP:
		return []Signal{CW_IO | CW_JP}
	case OP_JC:
		if flags.Carry() {
			return []Signal{CW_IO | CW_JP}
		}
	case OP_JZ:
		if flags.Zero() {
			return []Signal{CW_IO | CW_JP}
		}
	case OP_OUT:
		return []Signal{CW_AO | CW_OI}
	case OP_HLT:
		return []Signal{CW_HLT}
	}

	// NOP, undefined opcodes, and untaken jumps.
	return []Signal{0}
}

// Lookup returns the control word for an opcode's phase under the given
// flags, and whether it is the last phase of the instruction. Phases past
// the end of an instruction have no lines asserted.
func (rom *Microcode) Lookup(op Opcode, phase Phase, flags Flags) (cw Signal, last bool) {
	steps := rom[flags&(FLAG_CARRY|FLAG_ZERO)][op&(OPCODES-1)]

	if int(phase) >= len(steps) {
		return 0, true
	}

	return steps[phase], int(phase) == len(steps)-1
}

// Length returns the number of phases the instruction takes under the
// given flags.
func (rom *Microcode) Length(op Opcode, flags Flags) int {
	return len(rom[flags&(FLAG_CARRY|FLAG_ZERO)][op&(OPCODES-1)])
}
