// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/hmasm/cpu"
	"github.com/ezrec/hmasm/internal"
)

const (
	DEFAULT_STEPS = 16 // Default step budget.
)

var _emulator_defines = map[string]string{
	"LAST_ADDRESS": fmt.Sprintf("%x", cpu.MEMORY_SIZE-1),
}

// Emulator state. CPU + program + recorded trace.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program.
	MaxSteps int          // Step budget of Run.

	States []cpu.State // States recorded since the last reset.
}

// NewEmulator creates a new emulator, with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		MaxSteps: DEFAULT_STEPS,
	}

	emu.SetProgram(&cpu.Program{})

	return
}

// Defines returns an iterator over all of the defines, in name order.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Sorted(internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	))
}

// SetProgram replaces the running program, and resets the emulator.
func (emu *Emulator) SetProgram(prog *cpu.Program) {
	emu.Program = prog
	emu.Cpu = cpu.NewCpu(prog)
	emu.Reset()
}

// SetInstructions encodes an instruction sequence and runs it.
func (emu *Emulator) SetInstructions(insts []cpu.Instruction) (err error) {
	prog, err := cpu.Encode(insts)
	if err != nil {
		return
	}

	emu.SetProgram(prog)

	return
}

// Load assembles a program from its source text and runs it.
func (emu *Emulator) Load(input io.Reader) (err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}
	for equ, value := range emu.Defines() {
		asm.Predefine(equ, value)
	}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d instructions", len(prog.Instructions))
	}

	emu.SetProgram(prog)

	return
}

// Reset the emulator state.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.States = nil
}

// LineNo returns the source line number of the instruction the next
// step executes, or 0 if it has none.
func (emu *Emulator) LineNo() int {
	return emu.Program.Instruction(emu.Cpu.Next()).LineNo
}

// Tick performs a single step of the emulator. done is set once the
// step budget is used up.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Cpu.Steps >= emu.MaxSteps {
		done = true
		return
	}

	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	fetch, execute, err := emu.Cpu.Tick()
	if err != nil {
		return
	}

	emu.States = append(emu.States, fetch, execute)

	done = emu.Cpu.Steps >= emu.MaxSteps

	return
}

// Run resets the emulator and runs it for MaxSteps steps.
// Nothing is returned on error.
func (emu *Emulator) Run() (states []cpu.State, err error) {
	emu.Reset()

	for done := emu.Cpu.Steps >= emu.MaxSteps; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	states = emu.States

	return
}
