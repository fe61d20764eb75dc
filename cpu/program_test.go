package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeInstruction(t *testing.T) {
	assert := assert.New(t)

	labels := Labels{"loop": 0xc}

	table := [](struct {
		inst     Instruction
		expected Code
	}){
		{Nop(), Code{OP_NOP, 0}},
		{Lda(Constant(3)), Code{OP_LDA_IMM, 3}},
		{Lda(Address(4)), Code{OP_LDA_MEM, 4}},
		{Sta(5), Code{OP_STA, 5}},
		{Add(Constant(6)), Code{OP_ADD_IMM, 6}},
		{Add(Address(7)), Code{OP_ADD_MEM, 7}},
		{Sub(Constant(8)), Code{OP_SUB_IMM, 8}},
		{Sub(Address(9)), Code{OP_SUB_MEM, 9}},
		{Jmp(0xa), Code{OP_JMP, 0xa}},
		{JmpLabel("loop"), Code{OP_JMP, 0xc}},
		{Brz(0xb), Code{OP_BRZ, 0xb}},
		{Brc(0xd), Code{OP_BRC, 0xd}},
		{Brn(0xf), Code{OP_BRN, 0xf}},
	}

	for _, entry := range table {
		code, err := EncodeInstruction(entry.inst, labels)
		assert.NoError(err, entry.inst.String())
		assert.Equal(entry.expected, code, entry.inst.String())
	}

	// Opcode numbering is the binary interface.
	for n, op := range []Opcode{OP_NOP, OP_LDA_IMM, OP_LDA_MEM, OP_STA, OP_ADD_IMM, OP_ADD_MEM,
		OP_SUB_IMM, OP_SUB_MEM, OP_JMP, OP_BRZ, OP_BRC, OP_BRN} {
		assert.Equal(n, int(op), op.String())
	}

	_, err := EncodeInstruction(JmpLabel("nowhere"), labels)
	assert.Equal(ErrLabelMissing("nowhere"), err)
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	program := []Instruction{
		Lda(Constant(3)).WithLabel("start", 0),
		Add(Address(0xe)),
		Sta(0xe),
		JmpLabel("start"),
	}

	prog, err := Encode(program)
	assert.NoError(err)

	assert.Equal(Labels{"start": 0}, prog.Labels)
	assert.Equal([MEMORY_SIZE]Opcode{OP_LDA_IMM, OP_ADD_MEM, OP_STA, OP_JMP}, prog.Opcodes)
	assert.Equal([MEMORY_SIZE]Word{3, 0xe, 0xe, 0}, prog.Operands)

	bins := prog.Binary()
	assert.Equal(MEMORY_SIZE, len(bins))
	assert.Equal([]uint8{0x13, 0x5e, 0x3e, 0x80, 0x00}, bins[:5])

	var addrs []Word
	var codes []Code
	for addr, code := range prog.Codes() {
		addrs = append(addrs, addr)
		codes = append(codes, code)
	}
	assert.Equal([]Word{0, 1, 2, 3}, addrs)
	assert.Equal(Code{OP_JMP, 0}, codes[3])

	assert.Equal(program[1], prog.Instruction(1))
	assert.Equal(Nop(), prog.Instruction(4))
	assert.Equal(Nop(), prog.Instruction(0xf))
}

func TestEncodeErrors(t *testing.T) {
	assert := assert.New(t)

	program := make([]Instruction, MEMORY_SIZE)
	for n := range program {
		program[n] = Nop()
	}
	_, err := Encode(program)
	assert.NoError(err)

	_, err = Encode(append(program, Nop()))
	assert.ErrorIs(err, ErrProgramTooLarge{})

	_, err = Encode([]Instruction{JmpLabel("missing")})
	assert.Equal(ErrLabelMissing("missing"), err)

	inst := JmpLabel("missing")
	inst.LineNo = 7
	_, err = Encode([]Instruction{Nop(), inst})
	var syntax ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(7, syntax.LineNo)
	}
	assert.ErrorIs(err, ErrLabelMissing("missing"))

	_, err = Encode([]Instruction{Lda(Constant(0x10))})
	assert.ErrorIs(err, ErrValueRange)
}

func TestProgramString(t *testing.T) {
	assert := assert.New(t)

	prog, err := Encode([]Instruction{Lda(Constant(3)), Add(Constant(2)), Sta(5), Brn(0xf)})
	assert.NoError(err)

	expected := f("Data Memory:") + "\n" +
		"3 2 5 f\n" +
		"0 0 0 0\n" +
		"0 0 0 0\n" +
		"0 0 0 0\n" +
		f("Program Memory:") + "\n" +
		"1 4 3 b\n" +
		"0 0 0 0\n" +
		"0 0 0 0\n" +
		"0 0 0 0\n"
	assert.Equal(expected, prog.String())
}

func TestResolveLabels(t *testing.T) {
	assert := assert.New(t)

	program := []Instruction{
		Nop().WithLabel("a", 0),
		Nop(),
		Nop().WithLabel("b", 2),
		Nop().WithLabel("a", 3),
	}

	labels := ResolveLabels(program)
	assert.Equal(Labels{"a": 3, "b": 2}, labels)

	addr, err := labels.Resolve("b")
	assert.NoError(err)
	assert.Equal(Word(2), addr)

	_, err = labels.Resolve("c")
	assert.Equal(ErrLabelMissing("c"), err)

	assert.Empty(ResolveLabels(nil))
}
