// Package cpu implements the processor, encoder and assembler for the hm-asm
// teaching machine.
//
// The machine has 4-bit words and 16 addressable memory slots. Each slot holds
// an opcode in the program memory and an operand in the data memory; the data
// memory doubles as RAM for STA. The single accumulator is the source and
// target of all arithmetic, and a status register keeps the carry, zero and
// negative flags.
//
// The simulation runs in steps of two half-cycles (clk low: fetch, clk high:
// execute) and records a State snapshot for each, so the bus activity and the
// latency of register and memory writes can be followed step by step.
package cpu
