// Package translate formats user-visible text for the hm-asm tools in the
// language of the current locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	err := setCatalog()
	if err != nil {
		log.Printf("hmasm: catalog: %v", err)
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("hmasm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// In returns a printer for a specific language, regardless of the locale.
func In(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}
