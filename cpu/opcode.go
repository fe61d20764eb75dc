package cpu

import (
	"fmt"
)

// Opcode is the binary operation code stored in the program memory.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP     = Opcode(0)  // NOP
	OP_LDA_IMM = Opcode(1)  // LDA #
	OP_LDA_MEM = Opcode(2)  // LDA
	OP_STA     = Opcode(3)  // STA
	OP_ADD_IMM = Opcode(4)  // ADD #
	OP_ADD_MEM = Opcode(5)  // ADD
	OP_SUB_IMM = Opcode(6)  // SUB #
	OP_SUB_MEM = Opcode(7)  // SUB
	OP_JMP     = Opcode(8)  // JMP
	OP_BRZ     = Opcode(9)  // BRZ
	OP_BRC     = Opcode(10) // BRC
	OP_BRN     = Opcode(11) // BRN
)

// Code is a single encoded instruction: the opcode and its operand word.
type Code struct {
	Opcode  Opcode
	Operand Word
}

// argumentOpcodes maps the LDA/ADD/SUB mnemonics to their
// {immediate, memory} opcodes.
var argumentOpcodes = map[Mnemonic][2]Opcode{
	LDA: {OP_LDA_IMM, OP_LDA_MEM},
	ADD: {OP_ADD_IMM, OP_ADD_MEM},
	SUB: {OP_SUB_IMM, OP_SUB_MEM},
}

// branchOpcodes maps the conditional branches to their opcodes.
var branchOpcodes = map[Mnemonic]Opcode{
	BRZ: OP_BRZ,
	BRC: OP_BRC,
	BRN: OP_BRN,
}

// EncodeInstruction encodes an instruction, resolving jump labels with labels.
func EncodeInstruction(inst Instruction, labels Labels) (code Code, err error) {
	err = inst.Validate()
	if err != nil {
		return
	}

	arg := inst.Argument

	switch inst.Mnemonic {
	case NOP:
		code = Code{Opcode: OP_NOP}
	case STA:
		code = Code{Opcode: OP_STA, Operand: arg.Value}
	case LDA, ADD, SUB:
		ops := argumentOpcodes[inst.Mnemonic]
		op := ops[0]
		if arg.Kind == ARG_ADDRESS {
			op = ops[1]
		}
		code = Code{Opcode: op, Operand: arg.Value}
	case BRZ, BRC, BRN:
		code = Code{Opcode: branchOpcodes[inst.Mnemonic], Operand: arg.Value}
	case JMP:
		target := arg.Value
		if arg.Kind == ARG_LABEL {
			target, err = labels.Resolve(arg.Label)
			if err != nil {
				return
			}
		}
		code = Code{Opcode: OP_JMP, Operand: target}
	}

	return
}

// Byte packs the code as opcode<<4 | operand.
func (code Code) Byte() uint8 {
	return uint8(code.Opcode)<<WORD_BITS | uint8(code.Operand)
}

// String returns the code as "opcode:operand" in hex, with the opcode name.
func (code Code) String() string {
	return fmt.Sprintf("%X:%X %v", int(code.Opcode), uint8(code.Operand), code.Opcode)
}
