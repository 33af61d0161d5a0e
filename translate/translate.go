// Package translate formats operator-facing and error text in the
// locale of the host.
package translate

import (
	"os"

	"github.com/jeandeaual/go-locale"
	"github.com/sirupsen/logrus"

	"golang.org/x/text/message"
)

//go:generate go tool gotext -srclang=en-US update -out=catalog.go -lang=en-US github.com/ezrec/uvsim/...

// LANG_ENV overrides the locales reported by the operating system.
const LANG_ENV = "UVSIM_LANG"

var printer *message.Printer

func init() {
	var locales []string

	if lang, ok := os.LookupEnv(LANG_ENV); ok && len(lang) != 0 {
		locales = []string{lang}
	} else {
		var err error
		locales, err = locale.GetLocales()
		if err != nil {
			logrus.Debugf("uvsim: locale: %v", err)
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
