package translate

import (
	"errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// German texts of the classroom worksheets the trace tables follow.
var german = [][2]string{
	{"Step", "Schritt"},
	{"Address bus", "Adressbus"},
	{"Data bus", "Datenbus"},
	{"Memory (LDA n, ADD n, SUB n, STA n)", "Speicher (LDA n, ADD n, SUB n, STA n)"},
	{"Data Memory:", "Datenspeicher:"},
	{"Program Memory:", "Programmspeicher:"},
	{"label %v missing", "Label %v fehlt"},
	{"program has %d instructions, at most %d fit", "Programm hat %d Befehle, höchstens %d passen"},
	{"line %d '%v' %v", "Zeile %d '%v' %v"},
	{"line %d %v", "Zeile %d %v"},
	{"format unknown", "Format unbekannt"},
}

// setCatalog registers the translations with the default catalog.
func setCatalog() (err error) {
	for _, entry := range german {
		err = errors.Join(err, message.SetString(language.German, entry[0], entry[1]))
	}

	return
}
