// Package trace renders simulation states and program images as tables
// (text, markdown, HTML, CSV) or YAML documents.
package trace

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/hmasm/cpu"
	"github.com/ezrec/hmasm/translate"
)

var f = translate.From

var ErrFormatUnknown = errors.New(f("format unknown"))

// Format of a rendered trace.
type Format int

const (
	FORMAT_TEXT     = Format(0) // text
	FORMAT_MARKDOWN = Format(1) // markdown
	FORMAT_HTML     = Format(2) // html
	FORMAT_CSV      = Format(3) // csv
	FORMAT_YAML     = Format(4) // yaml
)

var formatMap = map[string]Format{
	"text":     FORMAT_TEXT,
	"markdown": FORMAT_MARKDOWN,
	"html":     FORMAT_HTML,
	"csv":      FORMAT_CSV,
	"yaml":     FORMAT_YAML,
}

// ParseFormat returns the format of a name.
func ParseFormat(name string) (format Format, err error) {
	format, ok := formatMap[strings.ToLower(name)]
	if !ok {
		err = ErrFormatUnknown
	}
	return
}

func hex(word cpu.Word) string {
	return fmt.Sprintf("%X", uint8(word))
}

// Header returns the column titles of a state table.
func Header() table.Row {
	return table.Row{
		f("Step"), "clk", "PC", f("Address bus"), f("Data bus"),
		"IR", "DR", "A", "SR", f("Memory (LDA n, ADD n, SUB n, STA n)"),
	}
}

// Row returns the columns of a state.
func Row(st cpu.State) table.Row {
	clk := 0
	if st.Clk {
		clk = 1
	}

	var memory string
	if st.Memory != nil {
		memory = st.Memory.String()
	}

	return table.Row{
		st.Step, clk, hex(st.Pc), hex(st.AddrBus), hex(st.DataBus),
		hex(st.Ir), hex(st.Dr), hex(st.Akku), st.Sr.String(), memory,
	}
}

// render writes a table in one of the table formats.
func render(w io.Writer, tw table.Writer, format Format) (err error) {
	var out string
	switch format {
	case FORMAT_TEXT:
		tw.SetStyle(table.StyleLight)
		out = tw.Render()
	case FORMAT_MARKDOWN:
		out = tw.RenderMarkdown()
	case FORMAT_HTML:
		out = tw.RenderHTML()
	case FORMAT_CSV:
		out = tw.RenderCSV()
	default:
		return ErrFormatUnknown
	}

	_, err = io.WriteString(w, out+"\n")
	return
}

// writeYAML writes a single YAML document.
func writeYAML(w io.Writer, value any) (err error) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err = enc.Encode(value)
	if err != nil {
		return
	}

	return enc.Close()
}

// Write renders the states of a simulation.
func Write(w io.Writer, states []cpu.State, format Format) (err error) {
	if format == FORMAT_YAML {
		return writeYAML(w, states)
	}

	tw := table.NewWriter()
	tw.AppendHeader(Header())
	for _, st := range states {
		tw.AppendRow(Row(st))
	}

	return render(w, tw, format)
}
