// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate renders user-visible text in the user's language.
package translate

import (
	"fmt"
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback is the language used when no user locale can be determined.
var Fallback = language.AmericanEnglish

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("translate: locale: %v", err)
	}

	printer = newPrinter(locales...)
}

// newPrinter selects a printer for the best catalogue match of the locales.
func newPrinter(locales ...string) *message.Printer {
	locales = append(locales, Fallback.String())

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// To writes the translation of an en-US Fprintf() format to w.
func To(w io.Writer, key message.Reference, args ...any) (err error) {
	_, err = fmt.Fprint(w, printer.Sprintf(key, args...))
	return
}
