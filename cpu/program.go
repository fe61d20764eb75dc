package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Program is the binary image of an instruction sequence. Opcodes is the
// program memory, Operands the initial data memory.
type Program struct {
	Instructions []Instruction
	Labels       Labels

	Opcodes  [MEMORY_SIZE]Opcode
	Operands [MEMORY_SIZE]Word
}

// Encode builds the binary image of an instruction sequence.
func Encode(insts []Instruction) (prog *Program, err error) {
	if len(insts) > MEMORY_SIZE {
		err = ErrProgramTooLarge{Count: len(insts)}
		return
	}

	labels := ResolveLabels(insts)

	image := &Program{
		Instructions: insts,
		Labels:       labels,
	}

	for c, inst := range insts {
		var code Code
		code, err = EncodeInstruction(inst, labels)
		if err != nil {
			if inst.LineNo != 0 {
				err = ErrSyntax{LineNo: inst.LineNo, Line: inst.String(), Err: err}
			}
			return
		}
		image.Opcodes[c] = code.Opcode
		image.Operands[c] = code.Operand
	}

	prog = image

	return
}

// Instruction returns the instruction at an address. Slots past the end
// of the program decode as NOP.
func (prog *Program) Instruction(addr Word) Instruction {
	if int(addr) >= len(prog.Instructions) {
		return Nop()
	}

	return prog.Instructions[addr]
}

// Codes iterates over the encoded program memory, by address.
func (prog *Program) Codes() iter.Seq2[Word, Code] {
	return func(yield func(addr Word, code Code) bool) {
		for n := range prog.Instructions {
			code := Code{Opcode: prog.Opcodes[n], Operand: prog.Operands[n]}
			if !yield(Word(n), code) {
				return
			}
		}
	}
}

// Binary returns all memory slots packed as opcode<<4 | operand.
func (prog *Program) Binary() (bins []uint8) {
	bins = make([]uint8, MEMORY_SIZE)
	for n := range MEMORY_SIZE {
		bins[n] = Code{Opcode: prog.Opcodes[n], Operand: prog.Operands[n]}.Byte()
	}

	return
}

// String dumps the data and program memory, four words per row.
func (prog *Program) String() string {
	var sb strings.Builder

	dump := func(title string, word func(n int) int) {
		sb.WriteString(f(title))
		sb.WriteString("\n")
		for row := 0; row < MEMORY_SIZE; row += 4 {
			fmt.Fprintf(&sb, "%x %x %x %x\n", word(row), word(row+1), word(row+2), word(row+3))
		}
	}

	dump("Data Memory:", func(n int) int { return int(prog.Operands[n]) })
	dump("Program Memory:", func(n int) int { return int(prog.Opcodes[n]) })

	return sb.String()
}
