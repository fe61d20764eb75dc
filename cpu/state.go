package cpu

import (
	"fmt"
)

// StatusRegister holds the condition flags.
type StatusRegister struct {
	Carry    bool `yaml:"carry"`
	Zero     bool `yaml:"zero"`
	Negative bool `yaml:"negative"`
}

// String returns the flags as the bits "CZN".
func (sr StatusRegister) String() string {
	bit := func(flag bool) byte {
		if flag {
			return '1'
		}
		return '0'
	}
	return string([]byte{bit(sr.Carry), bit(sr.Zero), bit(sr.Negative)})
}

// MemoryInfo is the memory slot touched by a memory-referencing
// instruction, and its content when the instruction was fetched.
type MemoryInfo struct {
	Addr    Word `yaml:"addr"`
	Content Word `yaml:"content"`
}

func (mi MemoryInfo) String() string {
	return fmt.Sprintf("(%X) = %X", uint8(mi.Addr), uint8(mi.Content))
}

// State is a snapshot of the machine at one half-cycle of a step.
type State struct {
	Step    int            `yaml:"step"`
	Clk     bool           `yaml:"clk"`
	Pc      Word           `yaml:"pc"`
	AddrBus Word           `yaml:"addr_bus"`
	DataBus Word           `yaml:"data_bus"`
	Ir      Word           `yaml:"ir"` // Instruction register (latched opcode).
	Dr      Word           `yaml:"dr"` // Data register (latched operand).
	Akku    Word           `yaml:"akku"`
	Sr      StatusRegister `yaml:"sr"`
	Memory  *MemoryInfo    `yaml:"memory,omitempty"`
}

// String returns the state on a single line.
func (st State) String() (out string) {
	clk := 0
	if st.Clk {
		clk = 1
	}

	out = fmt.Sprintf("%3d %d pc:%X addr:%X data:%X ir:%X dr:%X a:%X sr:%v",
		st.Step, clk, uint8(st.Pc), uint8(st.AddrBus), uint8(st.DataBus),
		uint8(st.Ir), uint8(st.Dr), uint8(st.Akku), st.Sr)
	if st.Memory != nil {
		out += " mem:" + st.Memory.String()
	}

	return
}
