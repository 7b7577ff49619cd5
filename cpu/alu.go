// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Flags is the state of the flags register.
type Flags uint8

const (
	FLAG_CARRY = Flags(1 << 0) // Carry (add) or borrow (subtract).
	FLAG_ZERO  = Flags(1 << 1) // Result was zero.
)

// FLAG_STATES is the number of distinct flag register values.
const FLAG_STATES = 4

// Carry returns true if the carry flag is set.
func (fl Flags) Carry() bool {
	return (fl & FLAG_CARRY) != 0
}

// Zero returns true if the zero flag is set.
func (fl Flags) Zero() bool {
	return (fl & FLAG_ZERO) != 0
}

// String returns the flags as "CZ", with '-' for a clear flag.
func (fl Flags) String() string {
	text := []byte("--")
	if fl.Carry() {
		text[0] = 'C'
	}
	if fl.Zero() {
		text[1] = 'Z'
	}
	return string(text)
}

// Alu computes a+b, or a-b when subtract is set, with 8-bit wraparound,
// and the flags the result would latch.
func Alu(a, b uint8, subtract bool) (result uint8, flags Flags) {
	if subtract {
		result = a - b
		if a < b {
			flags |= FLAG_CARRY
		}
	} else {
		sum := uint16(a) + uint16(b)
		result = uint8(sum)
		if sum > 0xff {
			flags |= FLAG_CARRY
		}
	}

	if result == 0 {
		flags |= FLAG_ZERO
	}

	return
}
