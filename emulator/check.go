// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Globals returns the Starlark environment describing the machine state.
// Registers and memory cells ("m0" .. "mf") are ints, "mem" is the list of
// memory cells, and "carry", "zero", and "halted" are bools.
func (emu *Emulator) Globals() starlark.StringDict {
	st := emu.Cpu.State()

	globals := starlark.StringDict{}
	for name, value := range st.Registers() {
		globals[name] = starlark.MakeInt(value)
	}

	mem := make([]starlark.Value, len(st.Memory))
	for n, data := range st.Memory {
		mem[n] = starlark.MakeInt(int(data))
	}
	globals["mem"] = starlark.NewList(mem)

	outs := make([]starlark.Value, len(emu.Recorder.Values))
	for n, value := range emu.Recorder.Values {
		outs[n] = starlark.MakeInt(int(value))
	}
	globals["outputs"] = starlark.NewList(outs)

	globals["carry"] = starlark.Bool(st.Flags.Carry())
	globals["zero"] = starlark.Bool(st.Flags.Zero())
	globals["halted"] = starlark.Bool(st.Halted)

	return globals
}

// Check evaluates a Starlark boolean expression over the machine state,
// ie "halted and a == 1".
func (emu *Emulator) Check(expr string) (ok bool, err error) {
	defer func() {
		if err != nil {
			err = &ErrCheck{Expr: expr, Err: err}
		}
	}()

	thread := &starlark.Thread{Name: "check"}
	opts := syntax.FileOptions{}

	value, err := starlark.EvalOptions(&opts, thread, "check", expr, emu.Globals())
	if err != nil {
		return
	}

	result, isBool := value.(starlark.Bool)
	if !isBool {
		err = ErrCheckType
		return
	}

	ok = bool(result)
	return
}
