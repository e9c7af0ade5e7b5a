// Package format renders amounts in the calculator's fixed display format:
// US dollars with en-US digit grouping.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySymbol = "$"

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats v as "$1,234.56". Negative amounts get a leading minus.
func Currency(v float64) string {
	if v < 0 {
		return "-" + currencySymbol + printer.Sprintf("%.2f", math.Abs(v))
	}
	return currencySymbol + printer.Sprintf("%.2f", v)
}
