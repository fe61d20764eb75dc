package trace

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/hmasm/cpu"
)

// Image is the YAML document of a program image.
type Image struct {
	DataMemory    []int          `yaml:"data_memory,flow"`
	ProgramMemory []int          `yaml:"program_memory,flow"`
	Labels        map[string]int `yaml:"labels,omitempty"`
	Listing       []string       `yaml:"listing"`
}

// NewImage returns the document of a program image.
func NewImage(prog *cpu.Program) (img *Image) {
	img = &Image{
		DataMemory:    make([]int, cpu.MEMORY_SIZE),
		ProgramMemory: make([]int, cpu.MEMORY_SIZE),
	}

	for n := range cpu.MEMORY_SIZE {
		img.DataMemory[n] = int(prog.Operands[n])
		img.ProgramMemory[n] = int(prog.Opcodes[n])
	}

	if len(prog.Labels) != 0 {
		img.Labels = make(map[string]int, len(prog.Labels))
		for name, addr := range prog.Labels {
			img.Labels[name] = int(addr)
		}
	}

	for _, inst := range prog.Instructions {
		img.Listing = append(img.Listing, inst.String())
	}

	return
}

// WriteProgram renders a program image. The text format is the memory
// dump of the program; the table formats list it by address.
func WriteProgram(w io.Writer, prog *cpu.Program, format Format) (err error) {
	switch format {
	case FORMAT_YAML:
		return writeYAML(w, NewImage(prog))
	case FORMAT_TEXT:
		_, err = io.WriteString(w, prog.String())
		return
	}

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"addr", "opcode", "operand", "code"})
	for addr, code := range prog.Codes() {
		inst := prog.Instruction(addr)
		tw.AppendRow(table.Row{hex(addr), int(code.Opcode), hex(code.Operand), inst.String()})
	}

	return render(w, tw, format)
}
