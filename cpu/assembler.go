// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates. All values are hexadecimal.
var sysEquate = map[string]string{
	"LINENO":      "0",
	"WORD_MASK":   fmt.Sprintf("%x", WORD_MASK),
	"MEMORY_SIZE": fmt.Sprintf("%x", MEMORY_SIZE),
}

// mnemonicMap maps the instruction names.
var mnemonicMap = map[string]Mnemonic{
	"NOP": NOP,
	"LDA": LDA,
	"STA": STA,
	"ADD": ADD,
	"SUB": SUB,
	"JMP": JMP,
	"BRZ": BRZ,
	"BRC": BRC,
	"BRN": BRN,
}

var reLabel = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Assembler is a single pass assembler for the hm-asm instruction set.
//
// Syntax, one instruction per line, ';' starts a comment:
//
//	[label:] MNEMONIC [argument]
//
// Arguments are '#n' (constant or branch displacement), '(n)' (memory
// address), 'n' (jump address) or a label name (jump target). All numbers
// are hexadecimal. '.equ NAME VALUE' defines an equate, and '$(expr)' is
// evaluated at assembly time.
type Assembler struct {
	Verbose      bool          // If set, verbosely logs the assembler actions.
	Instructions []Instruction // List of parsed instructions.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word, or of the equate it names.
func (asm *Assembler) valueOf(word string) (value uint64, err error) {
	equate, ok := asm.Equate[word]
	if ok {
		word = equate
	}

	value, err = strconv.ParseUint(word, 16, 16)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// wordOf returns the value of a word, which must fit a machine word.
func (asm *Assembler) wordOf(word string) (value Word, err error) {
	v64, err := asm.valueOf(word)
	if err != nil {
		return
	}

	if v64 > WORD_MASK {
		err = ErrValueRange
		return
	}

	value = Word(v64)
	return
}

// parenEval does compile-time $(...) evaluations. Negative results down
// to -8 are returned as 4-bit two's complement, for branch displacements.
func (asm *Assembler) parenEval(expr string) (value uint64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key := range asm.Equate {
		var v64 uint64
		v64, err = asm.valueOf(key)
		if err != nil {
			// Ignore non-integer equates.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(int(v64))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < -negativeBit || st_int64 > 0xffff {
		err = ErrParseExpression(expr)
		return
	}
	if st_int64 < 0 {
		st_int64 &= WORD_MASK
	}
	value = uint64(st_int64)
	return
}

// parenExpand replaces every $(...) in a line with its value.
func (asm *Assembler) parenExpand(line string) (out string, err error) {
	for {
		start := strings.Index(line, "$(")
		if start < 0 {
			out += line
			return
		}

		end := -1
		depth := 0
		for n := start + 1; n < len(line) && end < 0; n++ {
			switch line[n] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					end = n
				}
			}
		}
		if end < 0 {
			err = ErrParseExpression(line[start+2:])
			return
		}

		var value uint64
		value, err = asm.parenEval(line[start+2 : end])
		if err != nil {
			return
		}

		out += line[:start] + fmt.Sprintf("%x", value)
		line = line[end+1:]
	}
}

// parseArgument parses the argument of mnemonic.
func (asm *Assembler) parseArgument(mnemonic Mnemonic, word string) (arg Argument, err error) {
	switch {
	case strings.HasPrefix(word, "#"):
		arg.Kind = ARG_CONSTANT
		arg.Value, err = asm.wordOf(word[1:])
	case strings.HasPrefix(word, "(") && strings.HasSuffix(word, ")"):
		arg.Kind = ARG_ADDRESS
		arg.Value, err = asm.wordOf(word[1 : len(word)-1])
	case mnemonic == JMP:
		var value Word
		value, err = asm.wordOf(word)
		if err == nil {
			arg = Address(value)
			return
		}
		if !reLabel.MatchString(word) {
			return
		}
		err = nil
		arg = Argument{Kind: ARG_LABEL, Label: word}
	default:
		err = ErrArgumentInvalid
	}

	return
}

// parseLine parses a single line into an instruction.
// The returned instruction is nil for empty lines and equates.
func (asm *Assembler) parseLine(line string, lineno int) (inst *Instruction, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%x", lineno)

	// Do $() evaluations
	line, err = asm.parenExpand(line)
	if err != nil {
		return
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	var label *Label
	if strings.HasSuffix(words[0], ":") {
		name := strings.TrimSuffix(words[0], ":")
		if !reLabel.MatchString(name) {
			err = ErrLabelSyntax
			return
		}
		label = &Label{Name: name, Address: Word(len(asm.Instructions) & WORD_MASK)}
		words = words[1:]
		if len(words) == 0 {
			err = ErrOpcodeMissing
			return
		}
	}

	mnemonic, ok := mnemonicMap[strings.ToUpper(words[0])]
	if !ok {
		err = ErrMnemonicInvalid
		return
	}

	args := words[1:]
	if len(args) > 1 {
		err = ErrOpcodeExtraArgs
		return
	}

	parsed := Instruction{Mnemonic: mnemonic, Label: label, LineNo: lineno}
	if mnemonic != NOP {
		if len(args) == 0 {
			err = ErrOpcodeValueMissing
			return
		}
		parsed.Argument, err = asm.parseArgument(mnemonic, args[0])
		if err != nil {
			return
		}
	} else if len(args) != 0 {
		err = ErrOpcodeExtraArgs
		return
	}

	err = parsed.Validate()
	if err != nil {
		return
	}

	inst = &parsed

	return
}

// parseLines parses an input stream into the instruction list.
func (asm *Assembler) parseLines(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var inst *Instruction
		inst, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		if inst != nil {
			asm.Instructions = append(asm.Instructions, *inst)
		}
	}

	line = ""
	err = scanner.Err()

	return
}

// Parse parses an input stream into an encoded Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	asm.Instructions = nil
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	err = asm.parseLines(input)
	if err != nil {
		return
	}

	return Encode(asm.Instructions)
}
