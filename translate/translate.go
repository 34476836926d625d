// Package translate formats user-visible messages for the local language.
package translate

import (
	"log"
	"os"
	"strconv"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// LANG_ENV overrides the detected locale list when set.
const LANG_ENV = "HELIX_LANG"

var printer *message.Printer

func init() {
	var locales []string

	if lang, ok := os.LookupEnv(LANG_ENV); ok && len(lang) != 0 {
		locales = []string{lang}
	} else {
		var err error
		locales, err = locale.GetLocales()
		if err != nil {
			log.Printf("helix: locale: %v", err)
		}
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

// Rune quotes a rune for inclusion in a message, so that
// newlines and spaces remain visible.
func Rune(r rune) string {
	return strconv.QuoteRune(r)
}
