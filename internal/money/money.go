// Package money formats and parses monetary amounts.
//
// Formatting is locale-aware (en locale, matching the browser editor this
// engine replaced) and driven by an ISO 4217 currency code. Parsing is
// deliberately forgiving: user-entered strings may carry currency symbols,
// thousands separators, and stray whitespace, and anything unparseable
// degrades to zero rather than erroring.
package money

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts for a single currency.
type Formatter struct {
	printer *message.Printer
	symbol  string
	code    string
}

// NewFormatter creates a Formatter for the given ISO 4217 code ("USD",
// "CAD", ...). Unknown codes fall back to a bare "$" symbol.
func NewFormatter(code string) *Formatter {
	p := message.NewPrinter(language.English)
	symbol := "$"
	if unit, err := currency.ParseISO(code); err == nil {
		symbol = p.Sprint(currency.Symbol(unit))
	}
	return &Formatter{printer: p, symbol: symbol, code: code}
}

// Code returns the ISO 4217 code the Formatter was created with.
func (f *Formatter) Code() string { return f.code }

// Symbol returns the locale symbol for the currency ("$", "CA$", ...).
func (f *Formatter) Symbol() string { return f.symbol }

// Plain formats n with grouping separators and exactly two fraction
// digits, without a currency symbol: 1234.5 -> "1,234.50".
func (f *Formatter) Plain(n float64) string {
	n = finite(n)
	return f.printer.Sprint(number.Decimal(n,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// WithSymbol formats n like Plain with the currency symbol prefixed.
func (f *Formatter) WithSymbol(n float64) string {
	return f.symbol + f.Plain(n)
}

// Parse extracts a number from user-entered text. Currency symbols,
// grouping commas, and whitespace are stripped before parsing; anything
// that still fails to parse yields 0.
func Parse(s string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == ',', r == '$', r == '%':
			return -1
		case unicode.IsSpace(r), unicode.Is(unicode.Sc, r):
			return -1
		default:
			return r
		}
	}, s)
	// "CA$" and friends leave their letter prefix behind.
	cleaned = strings.TrimLeft(cleaned, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if cleaned == "" {
		return 0
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return finite(n)
}

// ParseOr parses s, returning fallback when s is blank.
func ParseOr(s string, fallback float64) float64 {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return Parse(s)
}

func finite(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}
