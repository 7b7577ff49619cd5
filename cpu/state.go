// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"

	"github.com/ezrec/sap1/internal"
)

// State is a snapshot of the exposed CPU state.
type State struct {
	Memory      Image
	A           uint8
	B           uint8
	Ir          uint8
	Pc          uint8
	Mar         uint8
	Bus         uint8
	AluResult   uint8
	Out         uint8
	ControlWord Signal
	Flags       Flags
	Phase       Phase
	Halted      bool

	Ticks        int
	Instructions int
}

// Registers yields the name and value of each register, followed by each
// memory address as "m0" through "mf".
func (st State) Registers() iter.Seq2[string, int] {
	regs := []struct {
		name  string
		value int
	}{
		{"pc", int(st.Pc)},
		{"ir", int(st.Ir)},
		{"mar", int(st.Mar)},
		{"a", int(st.A)},
		{"b", int(st.B)},
		{"bus", int(st.Bus)},
		{"alu", int(st.AluResult)},
		{"out", int(st.Out)},
		{"cw", int(st.ControlWord)},
		{"flags", int(st.Flags)},
		{"step", int(st.Phase)},
		{"ticks", st.Ticks},
		{"instructions", st.Instructions},
	}
	var named iter.Seq2[string, int] = func(yield func(string, int) bool) {
		for _, reg := range regs {
			if !yield(reg.name, reg.value) {
				return
			}
		}
	}

	mem := make([]int, len(st.Memory))
	for n, data := range st.Memory {
		mem[n] = int(data)
	}

	return internal.Concat2(named, internal.Hexed("m", mem))
}

// String renders the state one register per line.
func (st State) String() (text string) {
	regs := []string{
		"halt", "pc", "ir", "mar", "a", "b", "alu", "bus", "out",
		"cw", "flags", "step",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "halt":
			strval = fmt.Sprintf("%v", st.Halted)
		case "pc":
			strval = fmt.Sprintf("%X", st.Pc)
		case "ir":
			strval = fmt.Sprintf("%02X %v", st.Ir, Disassemble(st.Ir))
		case "mar":
			strval = fmt.Sprintf("%X", st.Mar)
		case "a":
			strval = fmt.Sprintf("%02X", st.A)
		case "b":
			strval = fmt.Sprintf("%02X", st.B)
		case "alu":
			strval = fmt.Sprintf("%02X", st.AluResult)
		case "bus":
			strval = fmt.Sprintf("%02X", st.Bus)
		case "out":
			strval = fmt.Sprintf("%d", st.Out)
		case "cw":
			strval = fmt.Sprintf("%04X %v", uint16(st.ControlWord), st.ControlWord)
		case "flags":
			strval = st.Flags.String()
		case "step":
			strval = st.Phase.String()
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}
