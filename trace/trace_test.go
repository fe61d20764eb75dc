package trace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/hmasm/cpu"
)

var testProgram = []cpu.Instruction{
	cpu.Lda(cpu.Constant(3)),
	cpu.Add(cpu.Constant(2)),
	cpu.Sta(5),
}

func TestParseFormat(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		name   string
		format Format
		err    error
	}{
		{"text", FORMAT_TEXT, nil},
		{"Markdown", FORMAT_MARKDOWN, nil},
		{"html", FORMAT_HTML, nil},
		{"CSV", FORMAT_CSV, nil},
		{"yaml", FORMAT_YAML, nil},
		{"json", FORMAT_TEXT, ErrFormatUnknown},
		{"", FORMAT_TEXT, ErrFormatUnknown},
	}

	for _, entry := range table {
		format, err := ParseFormat(entry.name)
		assert.ErrorIs(err, entry.err, entry.name)
		if entry.err == nil {
			assert.Equal(entry.format, format, entry.name)
		}
	}
}

func TestRow(t *testing.T) {
	assert := assert.New(t)

	st := cpu.State{
		Step:    7,
		Clk:     true,
		Pc:      0xc,
		AddrBus: 0xf,
		DataBus: 0xa,
		Ir:      3,
		Dr:      0xf,
		Akku:    0xa,
		Sr:      cpu.StatusRegister{Negative: true},
		Memory:  &cpu.MemoryInfo{Addr: 0xf, Content: 1},
	}

	row := Row(st)
	assert.Equal(len(Header()), len(row))
	assert.Equal(7, row[0])
	assert.Equal(1, row[1])
	assert.Equal("C", row[2])
	assert.Equal("F", row[3])
	assert.Equal("A", row[4])
	assert.Equal("001", row[8])
	assert.Equal("(F) = 1", row[9])

	st.Memory = nil
	st.Clk = false
	row = Row(st)
	assert.Equal(0, row[1])
	assert.Equal("", row[9])
}

func TestWrite(t *testing.T) {
	assert := assert.New(t)

	states, err := cpu.Simulate(testProgram, 4)
	assert.NoError(err)

	var buf bytes.Buffer

	err = Write(&buf, states, FORMAT_CSV)
	assert.NoError(err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(1+len(states), len(lines))
	assert.Contains(buf.String(), "2,0,2,2,5,4,2,5,000,(5) = 0")

	buf.Reset()
	err = Write(&buf, states, FORMAT_HTML)
	assert.NoError(err)
	assert.Contains(buf.String(), "<table")

	buf.Reset()
	err = Write(&buf, states, FORMAT_MARKDOWN)
	assert.NoError(err)
	assert.True(strings.HasPrefix(buf.String(), "|"))
	assert.Contains(buf.String(), "| 000 ")

	buf.Reset()
	err = Write(&buf, states, FORMAT_TEXT)
	assert.NoError(err)
	assert.Contains(buf.String(), "(5) = 0")

	buf.Reset()
	err = Write(&buf, states, Format(99))
	assert.ErrorIs(err, ErrFormatUnknown)
}

func TestWriteYAML(t *testing.T) {
	assert := assert.New(t)

	states, err := cpu.Simulate(testProgram, 4)
	assert.NoError(err)

	var buf bytes.Buffer
	err = Write(&buf, states, FORMAT_YAML)
	assert.NoError(err)
	assert.Contains(buf.String(), "addr_bus:")

	var decoded []cpu.State
	err = yaml.Unmarshal(buf.Bytes(), &decoded)
	assert.NoError(err)
	assert.Equal(states, decoded)
}

func TestWriteProgram(t *testing.T) {
	assert := assert.New(t)

	prog, err := cpu.Encode([]cpu.Instruction{
		cpu.Lda(cpu.Constant(3)).WithLabel("loop", 0),
		cpu.Add(cpu.Constant(2)),
		cpu.JmpLabel("loop"),
	})
	assert.NoError(err)

	var buf bytes.Buffer

	err = WriteProgram(&buf, prog, FORMAT_TEXT)
	assert.NoError(err)
	assert.Equal(prog.String(), buf.String())

	buf.Reset()
	err = WriteProgram(&buf, prog, FORMAT_CSV)
	assert.NoError(err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(4, len(lines))
	assert.Equal("2,8,0,JMP loop", lines[3])

	buf.Reset()
	err = WriteProgram(&buf, prog, FORMAT_YAML)
	assert.NoError(err)

	var img Image
	err = yaml.Unmarshal(buf.Bytes(), &img)
	assert.NoError(err)
	assert.Equal(map[string]int{"loop": 0}, img.Labels)
	assert.Equal([]int{1, 4, 8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, img.ProgramMemory)
	assert.Equal([]int{3, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, img.DataMemory)
	assert.Equal([]string{"loop: LDA #3", "ADD #2", "JMP loop"}, img.Listing)
}
