// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Phase is the micro-step position within an instruction.
type Phase uint8

//go:generate go tool stringer -linecomment -type=Phase
const (
	PHASE_FETCH0 = Phase(0) // T0
	PHASE_FETCH1 = Phase(1) // T1
	PHASE_EXEC2  = Phase(2) // T2
	PHASE_EXEC3  = Phase(3) // T3
	PHASE_EXEC4  = Phase(4) // T4
)

// PHASES is the maximum number of micro-steps in an instruction.
const PHASES = 5

// Fetch returns true for the phases shared by all instructions.
func (ph Phase) Fetch() bool {
	return ph < PHASE_EXEC2
}
