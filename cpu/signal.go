// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"strings"
)

// Signal is a control word: a set of hardware control lines.
type Signal uint16

// Control lines, LSB to MSB.
const (
	CW_HLT = Signal(0x0001) // Halt clock
	CW_MI  = Signal(0x0002) // Memory address in
	CW_RO  = Signal(0x0004) // RAM out
	CW_RI  = Signal(0x0008) // RAM in
	CW_IO  = Signal(0x0010) // Instruction out (operand nibble)
	CW_II  = Signal(0x0020) // Instruction in
	CW_AO  = Signal(0x0040) // A register out
	CW_AI  = Signal(0x0080) // A register in
	CW_EO  = Signal(0x0100) // ALU out
	CW_SU  = Signal(0x0200) // ALU subtract
	CW_BI  = Signal(0x0400) // B register in
	CW_OI  = Signal(0x0800) // Output latch in
	CW_CE  = Signal(0x1000) // Program counter enable
	CW_CO  = Signal(0x2000) // Program counter out
	CW_JP  = Signal(0x4000) // Program counter jump
	CW_FI  = Signal(0x8000) // Flags in
)

var _signal_names = [16]string{
	"HLT", "MI", "RO", "RI", "IO", "II", "AO", "AI",
	"EO", "SU", "BI", "OI", "CE", "CO", "JP", "FI",
}

// Has returns true if all of the lines in mask are asserted.
func (cw Signal) Has(mask Signal) bool {
	return (cw & mask) == mask
}

// String returns the asserted lines joined by '|', or "-" if none are.
func (cw Signal) String() string {
	if cw == 0 {
		return "-"
	}

	var names []string
	for n, name := range _signal_names {
		if (cw>>n)&1 != 0 {
			names = append(names, name)
		}
	}

	return strings.Join(names, "|")
}
