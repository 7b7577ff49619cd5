// Package cpu implements the microcode engine of the SAP-1 computer.
//
// The machine consists of a 16 byte memory, the A and B registers, an
// instruction register (IR), a 4-bit program counter (PC), a memory address
// register (MAR), an ALU with carry and zero flags, and an output latch, all
// connected by a single 8-bit bus.
//
// Each call to Cpu.Step executes one micro-step: the microcode ROM maps the
// current opcode, phase and flags to a control word, and the transfer, program
// counter, and ALU stages act on that control word.
package cpu
