// Package format renders derived values for display.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.English)
	title   = cases.Title(language.English)
	hundred = decimal.NewFromInt(100)
)

// Amount formats an amount with two decimal places and thousands separators,
// e.g. 1234567.891 as "1,234,567.89".
func Amount(d decimal.Decimal) string {
	return printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// OptionalAmount formats an amount that may be absent. Absent amounts are
// rendered as the empty string.
func OptionalAmount(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}

	return Amount(*d)
}

// ClampPercent limits a percentage to [0, 100] for progress bars.
//
// The stored percentage is never clamped, only its rendering.
func ClampPercent(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}

	if p.GreaterThan(hundred) {
		return hundred
	}

	return p
}

// Title title-cases a category label.
func Title(s string) string {
	return title.String(s)
}
