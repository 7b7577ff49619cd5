// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

const (
	MEMORY_SIZE  = 16   // Bytes of memory.
	ADDRESS_MASK = 0x0f // Mask of the 4-bit address space.
)

// Image is the contents of memory, indexed by address.
type Image [MEMORY_SIZE]uint8

// Listing yields the disassembly of each address.
func (img *Image) Listing() iter.Seq2[uint8, string] {
	return func(yield func(addr uint8, text string) bool) {
		for addr, data := range img {
			if !yield(uint8(addr), Disassemble(data)) {
				return
			}
		}
	}
}

// String returns the listing of the image, one address per line.
func (img *Image) String() (text string) {
	for addr, line := range img.Listing() {
		text += fmt.Sprintf("%X: %02X  %v\n", addr, img[addr], line)
	}
	return
}

// Programs are the bundled program images.
var Programs = map[string]Image{
	// Adds memory[0xF] to A, then halts.
	"add": {
		0x0: Instruction(OP_ADD, 0xf),
		0x1: Instruction(OP_HLT, 0),
		0xf: 0x01,
	},
	// Counts A from 0 to 255 on the output, halting when A wraps.
	"count": {
		0x0: Instruction(OP_OUT, 0),
		0x1: Instruction(OP_ADD, 0xf),
		0x2: Instruction(OP_JC, 0x4),
		0x3: Instruction(OP_JMP, 0x0),
		0x4: Instruction(OP_HLT, 0),
		0xf: 0x01,
	},
	// Subtracts memory[0xF] from memory[0xE], leaving the difference in B,
	// and stores A to memory[0xD].
	"sub": {
		0x0: Instruction(OP_LDA, 0xe),
		0x1: Instruction(OP_SUB, 0xf),
		0x2: Instruction(OP_STA, 0xd),
		0x3: Instruction(OP_OUT, 0),
		0x4: Instruction(OP_HLT, 0),
		0xe: 0x05,
		0xf: 0x03,
	},
}

// ProgramNames returns the sorted names of the bundled programs.
func ProgramNames() []string {
	return slices.Sorted(maps.Keys(Programs))
}
