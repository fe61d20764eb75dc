package cpu

import (
	"fmt"
)

// Mnemonic is the operation of an assembly instruction.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	NOP = Mnemonic(0) // NOP
	LDA = Mnemonic(1) // LDA
	STA = Mnemonic(2) // STA
	ADD = Mnemonic(3) // ADD
	SUB = Mnemonic(4) // SUB
	JMP = Mnemonic(5) // JMP
	BRZ = Mnemonic(6) // BRZ
	BRC = Mnemonic(7) // BRC
	BRN = Mnemonic(8) // BRN
)

// ArgumentKind is the addressing form of an instruction argument.
type ArgumentKind int

//go:generate go tool stringer -linecomment -type=ArgumentKind
const (
	ARG_NONE     = ArgumentKind(0) // none
	ARG_ADDRESS  = ArgumentKind(1) // address
	ARG_CONSTANT = ArgumentKind(2) // constant
	ARG_LABEL    = ArgumentKind(3) // label
)

// Argument of an instruction.
//   - ARG_ADDRESS: Value is a memory address, written (n).
//     A JMP to a literal address is written without parentheses.
//   - ARG_CONSTANT: Value is an immediate or branch displacement, written #n.
//   - ARG_LABEL: Label names a jump target.
type Argument struct {
	Kind  ArgumentKind
	Value Word
	Label string
}

// Address makes a memory address argument.
func Address(addr Word) Argument {
	return Argument{Kind: ARG_ADDRESS, Value: addr}
}

// Constant makes an immediate argument.
func Constant(value Word) Argument {
	return Argument{Kind: ARG_CONSTANT, Value: value}
}

// Label attached to an instruction slot.
type Label struct {
	Name    string
	Address Word // Ordinal of the labelled instruction.
}

// Instruction is one decoded line of assembly.
type Instruction struct {
	Mnemonic Mnemonic
	Argument Argument
	Label    *Label
	LineNo   int // Source line, if assembled from text.
}

func Nop() Instruction { return Instruction{Mnemonic: NOP} }

func Sta(addr Word) Instruction { return Instruction{Mnemonic: STA, Argument: Address(addr)} }

func Lda(arg Argument) Instruction { return Instruction{Mnemonic: LDA, Argument: arg} }

func Add(arg Argument) Instruction { return Instruction{Mnemonic: ADD, Argument: arg} }

func Sub(arg Argument) Instruction { return Instruction{Mnemonic: SUB, Argument: arg} }

func Brz(disp Word) Instruction { return Instruction{Mnemonic: BRZ, Argument: Constant(disp)} }

func Brc(disp Word) Instruction { return Instruction{Mnemonic: BRC, Argument: Constant(disp)} }

func Brn(disp Word) Instruction { return Instruction{Mnemonic: BRN, Argument: Constant(disp)} }

// Jmp jumps to a literal address.
func Jmp(addr Word) Instruction { return Instruction{Mnemonic: JMP, Argument: Address(addr)} }

// JmpLabel jumps to a named label.
func JmpLabel(name string) Instruction {
	return Instruction{Mnemonic: JMP, Argument: Argument{Kind: ARG_LABEL, Label: name}}
}

// WithLabel returns a copy of the instruction labelled for slot address.
func (inst Instruction) WithLabel(name string, address Word) Instruction {
	inst.Label = &Label{Name: name, Address: address}
	return inst
}

// Validate checks that the argument form is legal for the mnemonic.
func (inst Instruction) Validate() (err error) {
	arg := inst.Argument

	var legal bool
	switch inst.Mnemonic {
	case NOP:
		legal = arg.Kind == ARG_NONE
	case STA:
		legal = arg.Kind == ARG_ADDRESS
	case LDA, ADD, SUB:
		legal = arg.Kind == ARG_ADDRESS || arg.Kind == ARG_CONSTANT
	case BRZ, BRC, BRN:
		legal = arg.Kind == ARG_CONSTANT
	case JMP:
		legal = arg.Kind == ARG_ADDRESS || (arg.Kind == ARG_LABEL && len(arg.Label) != 0)
	default:
		return ErrMnemonicInvalid
	}

	if !legal {
		return ErrArgumentInvalid
	}

	if arg.Value > WORD_MASK {
		return ErrValueRange
	}

	if inst.Label != nil && inst.Label.Address > WORD_MASK {
		return ErrValueRange
	}

	return
}

// String returns the assembly language representation of the argument.
func (arg Argument) String() string {
	switch arg.Kind {
	case ARG_ADDRESS:
		return fmt.Sprintf("(%X)", uint8(arg.Value))
	case ARG_CONSTANT:
		return fmt.Sprintf("#%X", uint8(arg.Value))
	case ARG_LABEL:
		return arg.Label
	}
	return ""
}

// String returns the assembly language representation of the instruction.
func (inst Instruction) String() (out string) {
	if inst.Label != nil {
		out = inst.Label.Name + ": "
	}

	out += inst.Mnemonic.String()

	switch {
	case inst.Argument.Kind == ARG_NONE:
	case inst.Mnemonic == JMP && inst.Argument.Kind == ARG_ADDRESS:
		out += fmt.Sprintf(" %X", uint8(inst.Argument.Value))
	default:
		out += " " + inst.Argument.String()
	}

	return
}
