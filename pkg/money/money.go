package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCents renders an amount held in minor units as a grouped USD display
// string: 2500000 -> "$25,000.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + printer.Sprintf("$%d", cents/100) + fmt.Sprintf(".%02d", cents%100)
}

// ParseCents converts a submitted amount string ("49.99") into minor units
// (4999) without going through float64. Amounts with sub-cent precision are
// rejected.
func ParseCents(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	c := d.Mul(decimal.NewFromInt(100))
	if !c.IsInteger() {
		return 0, fmt.Errorf("amount %q has sub-cent precision", s)
	}
	return c.IntPart(), nil
}

// CentsToMajor converts minor units back to major units for form display,
// e.g. 2500 -> 25.
func CentsToMajor(cents int64) float64 {
	f, _ := decimal.New(cents, -2).Float64()
	return f
}
