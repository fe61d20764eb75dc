package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

// Opcode numbers, offered to the assembler for $() expressions.
var _cpu_defines = map[string]string{
	"OP_NOP":     fmt.Sprintf("%x", int(OP_NOP)),
	"OP_LDA_IMM": fmt.Sprintf("%x", int(OP_LDA_IMM)),
	"OP_LDA_MEM": fmt.Sprintf("%x", int(OP_LDA_MEM)),
	"OP_STA":     fmt.Sprintf("%x", int(OP_STA)),
	"OP_ADD_IMM": fmt.Sprintf("%x", int(OP_ADD_IMM)),
	"OP_ADD_MEM": fmt.Sprintf("%x", int(OP_ADD_MEM)),
	"OP_SUB_IMM": fmt.Sprintf("%x", int(OP_SUB_IMM)),
	"OP_SUB_MEM": fmt.Sprintf("%x", int(OP_SUB_MEM)),
	"OP_JMP":     fmt.Sprintf("%x", int(OP_JMP)),
	"OP_BRZ":     fmt.Sprintf("%x", int(OP_BRZ)),
	"OP_BRC":     fmt.Sprintf("%x", int(OP_BRC)),
	"OP_BRN":     fmt.Sprintf("%x", int(OP_BRN)),
}

// pending holds the effects computed during a step. They are committed at
// the top of the next step.
type pending struct {
	pc    uint8 // Next program counter, not yet reduced.
	akku  uint8 // Next accumulator, not yet reduced.
	write bool  // Set if a memory write is waiting.
	addr  Word  // Address of the memory write.
	value Word  // Value of the memory write.
}

// Cpu is the simulation context for the processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Program *Program          // Decode source; never written.
	Memory  [MEMORY_SIZE]Word // Data memory, initially the program operands.

	Steps   int            // Steps executed since reset.
	Pc      Word           // Program counter.
	AddrBus Word           // Address bus.
	DataBus Word           // Data bus.
	Ir      Word           // Instruction register.
	Dr      Word           // Data register.
	Akku    Word           // Accumulator.
	Sr      StatusRegister // Status register.

	prior Word // Accumulator before the last commit.
	next  pending
}

// NewCpu creates a new CPU running prog.
func NewCpu(prog *Program) (cpu *Cpu) {
	cpu = &Cpu{
		Program: prog,
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Next returns the address the next step will fetch from.
func (cpu *Cpu) Next() Word {
	return Wrap(cpu.next.pc)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []struct {
		name  string
		value string
	}{
		{"step", fmt.Sprintf("%d", cpu.Steps)},
		{"pc", fmt.Sprintf("%X", uint8(cpu.Pc))},
		{"addr", fmt.Sprintf("%X", uint8(cpu.AddrBus))},
		{"data", fmt.Sprintf("%X", uint8(cpu.DataBus))},
		{"ir", fmt.Sprintf("%X", uint8(cpu.Ir))},
		{"dr", fmt.Sprintf("%X", uint8(cpu.Dr))},
		{"a", fmt.Sprintf("%X", uint8(cpu.Akku))},
		{"sr", cpu.Sr.String()},
	}
	for _, reg := range regs {
		text += fmt.Sprintf("% 5s: %v\n", reg.name, reg.value)
	}

	return
}

// Reset the CPU state.
// - Reloads the data memory from the program operands.
// - Clears the registers, buses and flags.
// - Drops any pending effects.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Memory = cpu.Program.Operands
	cpu.Steps = 0
	cpu.Pc = 0
	cpu.AddrBus = 0
	cpu.DataBus = 0
	cpu.Ir = 0
	cpu.Dr = 0
	cpu.Akku = 0
	cpu.Sr = StatusRegister{}
	cpu.prior = 0
	cpu.next = pending{}
}

// StatusOf derives the status register from the committed accumulator
// akku. Zero and negative follow akku. The carry is recomputed when the
// unreduced value akku was committed from differs from the accumulator
// before the commit, and is then the carry bit of that value; otherwise
// it keeps the prior state.
func StatusOf(akku Word, before Word, committed uint8, prior StatusRegister) (sr StatusRegister) {
	sr = prior
	sr.Zero = akku == 0
	sr.Negative = akku&negativeBit != 0
	if committed != uint8(before) {
		sr.Carry = committed&carryBit != 0
	}

	return
}

// commit applies the effects of the previous step.
func (cpu *Cpu) commit() {
	if cpu.next.write {
		if cpu.Verbose {
			log.Printf("cpu: (%X) <- %X", uint8(cpu.next.addr), uint8(cpu.next.value))
		}
		cpu.Memory[cpu.next.addr] = cpu.next.value
		cpu.next.write = false
	}

	cpu.prior = cpu.Akku
	cpu.Pc = Wrap(cpu.next.pc)
	cpu.Akku = Wrap(cpu.next.akku)
}

// value gets the value of an LDA/ADD/SUB argument.
func (cpu *Cpu) value(arg Argument) uint8 {
	if arg.Kind == ARG_ADDRESS {
		return uint8(cpu.Memory[arg.Value])
	}

	return uint8(arg.Value)
}

// memoryInfo returns the memory slot touched by an instruction, if any.
func (cpu *Cpu) memoryInfo(inst Instruction) *MemoryInfo {
	switch inst.Mnemonic {
	case STA, LDA, ADD, SUB:
		if inst.Argument.Kind == ARG_ADDRESS {
			addr := inst.Argument.Value
			return &MemoryInfo{Addr: addr, Content: cpu.Memory[addr]}
		}
	}

	return nil
}

// snapshot records the current state.
func (cpu *Cpu) snapshot(clk bool, info *MemoryInfo) (st State) {
	st = State{
		Step:    cpu.Steps,
		Clk:     clk,
		Pc:      cpu.Pc,
		AddrBus: cpu.AddrBus,
		DataBus: cpu.DataBus,
		Ir:      cpu.Ir,
		Dr:      cpu.Dr,
		Akku:    cpu.Akku,
		Sr:      cpu.Sr,
	}

	if info != nil {
		mi := *info
		st.Memory = &mi
	}

	return
}

// effect computes the pending effects of an instruction.
func (cpu *Cpu) effect(inst Instruction, code Code) {
	pc := uint8(cpu.Pc)
	akku := uint8(cpu.Akku)
	arg := inst.Argument

	var branch, jump bool

	switch inst.Mnemonic {
	case NOP:
		// pass
	case STA:
		cpu.next.write = true
		cpu.next.addr = arg.Value
		cpu.next.value = cpu.Akku
	case LDA:
		cpu.next.akku = cpu.value(arg)
	case ADD:
		cpu.next.akku = akku + cpu.value(arg)
	case SUB:
		// Two's complement: a + ~b + 1
		cpu.next.akku = akku + (^cpu.value(arg) & WORD_MASK) + 1
	case BRZ:
		branch = cpu.Sr.Zero
	case BRC:
		branch = cpu.Sr.Carry
	case BRN:
		branch = cpu.Sr.Negative
	case JMP:
		cpu.next.pc = uint8(code.Operand)
		jump = true
	}

	switch {
	case branch:
		cpu.next.pc = pc + uint8(arg.Value)
	case !jump:
		cpu.next.pc = pc + 1
	}
}

// Tick executes a single step, and returns the states of both half-cycles.
func (cpu *Cpu) Tick() (fetch, execute State, err error) {
	cpu.commit()

	inst := cpu.Program.Instruction(cpu.Pc)
	code, err := EncodeInstruction(inst, cpu.Program.Labels)
	if err != nil {
		return
	}

	// clk low: the decoded instruction is not latched yet.
	cpu.AddrBus = cpu.Pc
	cpu.DataBus = cpu.Memory[cpu.Pc]
	info := cpu.memoryInfo(inst)
	fetch = cpu.snapshot(false, info)

	// clk high
	cpu.Ir = Word(code.Opcode)
	cpu.Dr = code.Operand
	cpu.Sr = StatusOf(cpu.Akku, cpu.prior, cpu.next.akku, cpu.Sr)
	// For JMP the operand is the resolved target, so the jump shows on the
	// address bus in this step already.
	cpu.AddrBus = cpu.Dr
	cpu.DataBus = cpu.Memory[cpu.AddrBus]

	cpu.effect(inst, code)

	execute = cpu.snapshot(true, info)

	if cpu.Verbose {
		log.Printf("cpu: %X: %v", uint8(cpu.Pc), inst)
	}

	cpu.Steps++

	return
}

// Simulate runs an instruction sequence for a number of steps, and returns
// the two states of every step. Nothing is returned if the program cannot
// be encoded.
func Simulate(insts []Instruction, steps int) (states []State, err error) {
	prog, err := Encode(insts)
	if err != nil {
		return
	}

	cpu := NewCpu(prog)

	steps = max(steps, 0)
	trace := make([]State, 0, 2*steps)
	for range steps {
		var fetch, execute State
		fetch, execute, err = cpu.Tick()
		if err != nil {
			return
		}
		trace = append(trace, fetch, execute)
	}

	states = trace

	return
}
