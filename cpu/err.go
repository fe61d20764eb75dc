package cpu

import (
	"errors"

	"github.com/ezrec/hmasm/translate"
)

var f = translate.From

var (
	// Instruction errors
	ErrArgumentInvalid = errors.New(f("argument invalid"))
	ErrValueRange      = errors.New(f("value exceeds 4 bits"))
	ErrMnemonicInvalid = errors.New(f("mnemonic invalid"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelSyntax        = errors.New(f("label syntax"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeMissing      = errors.New(f("opcode missing"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
)

// ErrLabelMissing is returned when a jump names a label that no
// instruction carries.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrProgramTooLarge is returned for programs that do not fit the memory.
type ErrProgramTooLarge struct {
	Count int
}

func (err ErrProgramTooLarge) Error() string {
	return f("program has %d instructions, at most %d fit", err.Count, MEMORY_SIZE)
}

func (err ErrProgramTooLarge) Is(target error) (ok bool) {
	_, ok = target.(ErrProgramTooLarge)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
