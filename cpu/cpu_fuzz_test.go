package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fuzzProgram builds a valid program from arbitrary bytes.
// The high nibble selects the instruction form, the low nibble the value.
func fuzzProgram(data []byte) (program []Instruction) {
	for _, b := range data[:min(len(data), MEMORY_SIZE)] {
		value := Wrap(b)
		var inst Instruction
		switch (b >> 4) % 12 {
		case 0:
			inst = Nop()
		case 1:
			inst = Lda(Constant(value))
		case 2:
			inst = Lda(Address(value))
		case 3:
			inst = Sta(value)
		case 4:
			inst = Add(Constant(value))
		case 5:
			inst = Add(Address(value))
		case 6:
			inst = Sub(Constant(value))
		case 7:
			inst = Sub(Address(value))
		case 8:
			inst = Jmp(value)
		case 9:
			inst = Brz(value)
		case 10:
			inst = Brc(value)
		case 11:
			inst = Brn(value)
		}
		program = append(program, inst)
	}

	return
}

func FuzzCpu(f *testing.F) {
	f.Add([]byte{}, uint8(4))
	f.Add([]byte{0x13, 0x42, 0x35}, uint8(6))
	f.Add([]byte{0x1f, 0x41, 0x00, 0xa2, 0x82}, uint8(20))
	f.Add([]byte{0x15, 0x71, 0x3e, 0x9e, 0xbf, 0x60}, uint8(40))

	f.Fuzz(func(t *testing.T, data []byte, steps uint8) {
		assert := assert.New(t)

		program := fuzzProgram(data)

		states, err := Simulate(program, int(steps))
		assert.NoError(err)
		assert.Equal(2*int(steps), len(states))

		for n, st := range states {
			assert.Equal(n/2, st.Step)
			assert.Equal(n%2 == 1, st.Clk)
			assert.LessOrEqual(st.Pc, Word(WORD_MASK))
			assert.LessOrEqual(st.Akku, Word(WORD_MASK))
			assert.LessOrEqual(st.AddrBus, Word(WORD_MASK))
			assert.LessOrEqual(st.DataBus, Word(WORD_MASK))
			assert.LessOrEqual(st.Dr, Word(WORD_MASK))
			if st.Clk {
				assert.Equal(st.Akku == 0, st.Sr.Zero)
				assert.Equal(st.Akku&negativeBit != 0, st.Sr.Negative)
			} else {
				// Both half-cycles of a step see the same committed registers.
				assert.Equal(st.Pc, states[n+1].Pc)
				assert.Equal(st.Akku, states[n+1].Akku)
				assert.Equal(st.Memory, states[n+1].Memory)
			}
		}

		prefix, err := Simulate(program, int(steps)/2)
		assert.NoError(err)
		assert.Equal(prefix, states[:len(prefix)])
	})
}
