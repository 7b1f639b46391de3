// Package formatter renders amounts as compact (K/M/B/T) and full currency
// strings for display.
package formatter

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultSymbol is the currency prefix used when no symbol is configured.
const DefaultSymbol = "₦"

// threshold pairs a magnitude with its suffix. Evaluated largest first; the
// first threshold the absolute value meets or exceeds wins.
type threshold struct {
	value  decimal.Decimal
	suffix string
}

var thresholds = []threshold{
	{decimal.New(1, 12), "T"},
	{decimal.New(1, 9), "B"},
	{decimal.New(1, 6), "M"},
	{decimal.New(1, 3), "K"},
}

// Formatter renders amounts with a configurable currency symbol.
type Formatter struct {
	symbol string
}

// New creates a Formatter with the given currency symbol.
// An empty symbol falls back to DefaultSymbol.
func New(symbol string) *Formatter {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return &Formatter{symbol: symbol}
}

// Compact renders an amount in abbreviated magnitude form: "₦1.5K", "₦2.5M".
// The mantissa is shown to one decimal place with a trailing ".0" stripped.
// Below the K threshold the full grouped integer is shown with no suffix.
func (f *Formatter) Compact(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	abs := amount.Abs()

	for _, t := range thresholds {
		if abs.GreaterThanOrEqual(t.value) {
			mantissa := abs.DivRound(t.value, 1)
			text := mantissa.String()
			text = strings.TrimSuffix(text, ".0")
			return f.withSign(negative, text+t.suffix)
		}
	}

	return f.withSign(negative, groupThousands(abs.Round(0).String()))
}

// Full renders an amount as a grouped integer with the currency prefix and no
// decimal places: "₦1,234,567".
func (f *Formatter) Full(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	return f.withSign(negative, groupThousands(amount.Abs().Round(0).String()))
}

// withSign prefixes the currency symbol, keeping the minus sign in front.
func (f *Formatter) withSign(negative bool, text string) string {
	if negative {
		return "-" + f.symbol + text
	}
	return f.symbol + text
}

// groupThousands inserts comma separators into a non-negative integer string.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var builder strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		builder.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if builder.Len() > 0 {
			builder.WriteString(",")
		}
		builder.WriteString(digits[i : i+3])
	}
	return builder.String()
}
