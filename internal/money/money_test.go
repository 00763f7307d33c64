package money

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"0", 0},
		{"12.5", 12.5},
		{"1,234.56", 1234.56},
		{"$1,234.56", 1234.56},
		{"CA$99.95", 99.95},
		{" 42 ", 42},
		{"-5.25", -5.25},
		{"13%", 13},
		{"abc", 0},
		{"1.2.3", 0},
		{"$ 10", 10},
	}
	for _, tt := range tests {
		if got := Parse(tt.in); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseOr(t *testing.T) {
	if got := ParseOr("", 13); got != 13 {
		t.Errorf("ParseOr blank = %v, want 13", got)
	}
	if got := ParseOr("  ", 13); got != 13 {
		t.Errorf("ParseOr whitespace = %v, want 13", got)
	}
	if got := ParseOr("5", 13); got != 5 {
		t.Errorf("ParseOr(5) = %v, want 5", got)
	}
}

func TestFormatterPlain(t *testing.T) {
	f := NewFormatter("USD")
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{5, "5.00"},
		{1234.5, "1,234.50"},
		{27.6, "27.60"},
		{math.NaN(), "0.00"},
		{math.Inf(1), "0.00"},
	}
	for _, tt := range tests {
		if got := f.Plain(tt.in); got != tt.want {
			t.Errorf("Plain(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatterWithSymbol(t *testing.T) {
	usd := NewFormatter("USD")
	if got := usd.WithSymbol(1234.5); got != "$1,234.50" {
		t.Errorf("USD WithSymbol = %q, want $1,234.50", got)
	}
	cad := NewFormatter("CAD")
	if cad.Symbol() == "" {
		t.Fatal("CAD formatter has empty symbol")
	}
	want := cad.Symbol() + "99.95"
	if got := cad.WithSymbol(99.95); got != want {
		t.Errorf("CAD WithSymbol = %q, want %q", got, want)
	}
}

func TestFormatterUnknownCode(t *testing.T) {
	f := NewFormatter("???")
	if f.Symbol() != "$" {
		t.Errorf("unknown code symbol = %q, want $", f.Symbol())
	}
}
