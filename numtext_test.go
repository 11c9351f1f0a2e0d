package fundboard

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		// the two locale conventions and the currency-formatted variant
		// must all land on the same value
		{"1.500,00", "1500.00"},
		{"1,500.00", "1500.00"},
		{"€ 2,144.68", "2144.68"},
		{"1500.00", "1500.00"},
		{"€ 2.144,68", "2144.68"},
		{"EUR 100,50", "100.50"},
		{"100.50 EUR", "100.50"},
		{"eur 7", "7"},
		{"1.500", "1500"},
		{"1,500", "1500"},
		{"12,34", "12.34"},
		{"12.34", "12.34"},
		{"0,5", "0.5"},
		{"1.234.567,89", "1234567.89"},
		{"1,234,567.89", "1234567.89"},
		{"-42,50", "-42.50"},
		{"7", "7"},
		{"  1500.00  ", "1500.00"},
	}
	for _, tt := range tests {
		got, err := ParseDecimal(tt.in)
		if err != nil {
			t.Errorf("ParseDecimal(%q) error = %v", tt.in, err)
			continue
		}
		want, _ := decimal.NewFromString(tt.want)
		if !got.Equal(want) {
			t.Errorf("ParseDecimal(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseDecimal_rejectsMalformed(t *testing.T) {
	// a currency code glued to the digits is not a separate field and
	// stays malformed
	for _, in := range []string{"", "€", "EUR", "abc", "100EUR", "1,23,45", "1.23.45", "12-34", "1,2345,00"} {
		if got, err := ParseDecimal(in); err == nil {
			t.Errorf("ParseDecimal(%q) = %s, want error", in, got)
		}
	}
}

func TestNormalizeNumber_idempotent(t *testing.T) {
	// normalizing an already-normalized value yields the same value
	for _, in := range []string{"1.500,00", "1,500.00", "2144.68", "1500", "0.5", "-42.50"} {
		once, err := NormalizeNumber(in)
		if err != nil {
			t.Fatalf("NormalizeNumber(%q) error = %v", in, err)
		}
		twice, err := NormalizeNumber(once)
		if err != nil {
			t.Fatalf("NormalizeNumber(%q) error = %v", once, err)
		}
		if once != twice {
			t.Errorf("NormalizeNumber is not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestCleanHeader(t *testing.T) {
	tests := []struct{ in, want string }{
		{"\ufeffDate", "Date"},
		{"  Share Price  ", "Share Price"},
		{"\ufeff Invested Capital ", "Invested Capital"},
		{"Shares", "Shares"},
	}
	for _, tt := range tests {
		if got := CleanHeader(tt.in); got != tt.want {
			t.Errorf("CleanHeader(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
