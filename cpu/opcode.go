// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// Opcode is the 4-bit instruction class held in the high nibble of an
// instruction byte.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP = Opcode(0b0000) // NOP
	OP_LDA = Opcode(0b0001) // LDA
	OP_ADD = Opcode(0b0010) // ADD
	OP_SUB = Opcode(0b0011) // SUB
	OP_STA = Opcode(0b0100) // STA
	OP_LDI = Opcode(0b0101) // LDI
	OP_JMP = Opcode(0b0110) // JMP
	OP_JC  = Opcode(0b0111) // JC
	OP_JZ  = Opcode(0b1000) // JZ
	OP_OUT = Opcode(0b1110) // OUT
	OP_HLT = Opcode(0b1111) // HLT
)

const (
	OPCODES      = 16   // Size of the opcode space.
	OPERAND_MASK = 0x0f // Operand bits of an instruction byte.
)

// Defined returns true if the opcode has defined semantics.
// Undefined opcodes execute as NOP.
func (op Opcode) Defined() bool {
	return op <= OP_JZ || op == OP_OUT || op == OP_HLT
}

// HasOperand returns true if the instruction uses its operand nibble.
func (op Opcode) HasOperand() bool {
	switch op {
	case OP_LDA, OP_ADD, OP_SUB, OP_STA, OP_LDI, OP_JMP, OP_JC, OP_JZ:
		return true
	}
	return false
}

// Instruction encodes an opcode and operand into an instruction byte.
func Instruction(op Opcode, operand uint8) uint8 {
	return (uint8(op) << 4) | (operand & OPERAND_MASK)
}

// Decode splits an instruction byte into opcode and operand.
func Decode(ir uint8) (op Opcode, operand uint8) {
	op = Opcode(ir >> 4)
	operand = ir & OPERAND_MASK
	return
}

// Disassemble returns the mnemonic form of an instruction byte.
func Disassemble(ir uint8) string {
	op, operand := Decode(ir)
	switch {
	case !op.Defined():
		return "???"
	case op.HasOperand():
		return fmt.Sprintf("%v 0x%X", op, operand)
	default:
		return op.String()
	}
}
