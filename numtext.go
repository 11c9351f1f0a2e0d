package fundboard

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// This file normalizes the text the spreadsheet hands us. Cells arrive as
// currency-formatted strings in either European or US convention
// ("1.500,00", "1,500.00", "€ 2,144.68") and headers may carry a UTF-8
// byte-order mark.

// CleanHeader strips byte-order marks and surrounding whitespace from a
// column header.
func CleanHeader(h string) string {
	return strings.TrimSpace(strings.ReplaceAll(h, "\ufeff", ""))
}

// NormalizeNumber rewrites a numeric string of either locale convention
// into canonical form with '.' as decimal point and no grouping.
//
// The disambiguation rule: a '.' or ',' followed by exactly three digits
// and then another separator or the end of the field is a thousands
// separator and is dropped; otherwise it must be the rightmost separator
// and becomes the decimal point. Anything else is malformed.
//
// The function is idempotent: its output normalizes to itself.
func NormalizeNumber(s string) (string, error) {
	rs := []rune(s)
	lastSep := -1
	for i, r := range rs {
		if r == '.' || r == ',' {
			lastSep = i
		}
	}

	var b strings.Builder
	for i, r := range rs {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '+':
			if i != 0 {
				return "", fmt.Errorf("misplaced sign in number %q", s)
			}
			b.WriteRune(r)
		case r == '.' || r == ',':
			if isThousandsSep(rs, i) {
				continue
			}
			if i != lastSep {
				return "", fmt.Errorf("ambiguous separators in number %q", s)
			}
			b.WriteRune('.')
		default:
			return "", fmt.Errorf("unexpected character %q in number %q", r, s)
		}
	}
	out := b.String()
	if strings.Trim(out, "+-") == "" {
		return "", fmt.Errorf("empty number %q", s)
	}
	return out, nil
}

// isThousandsSep reports whether the separator at index i is followed by
// exactly three digits and then another separator or the end of field.
func isThousandsSep(rs []rune, i int) bool {
	j := i + 1
	digits := 0
	for j < len(rs) && rs[j] >= '0' && rs[j] <= '9' {
		digits++
		j++
	}
	if digits != 3 {
		return false
	}
	return j == len(rs) || rs[j] == '.' || rs[j] == ','
}

// ParseDecimal parses a locale-ambiguous, possibly currency-formatted
// numeric string into an exact decimal. Currency markers are stripped
// before the separator rule applies: any Unicode currency sign, and an
// alphabetic currency code ("EUR") standing apart from the number.
func ParseDecimal(s string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Sc, r) {
			return -1
		}
		return r
	}, s)
	cleaned = strings.TrimSpace(cleaned)
	cleaned = stripCurrencyCode(cleaned)

	normalized, err := NormalizeNumber(cleaned)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("cannot parse number %q: %w", s, err)
	}
	return d, nil
}

// stripCurrencyCode drops a leading or trailing all-letter field, as in
// "EUR 100,50" or "100,50 EUR". The code must be its own field: letters
// glued to digits stay put and fail the number parse.
func stripCurrencyCode(s string) string {
	fields := strings.Fields(s)
	if len(fields) > 1 && isAlpha(fields[0]) {
		fields = fields[1:]
	}
	if len(fields) > 1 && isAlpha(fields[len(fields)-1]) {
		fields = fields[:len(fields)-1]
	}
	return strings.Join(fields, " ")
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// ParseMoney is ParseDecimal with the resulting amount carried as Money.
func ParseMoney(s, currency string) (Money, error) {
	d, err := ParseDecimal(s)
	if err != nil {
		return Money{}, err
	}
	return M(d, currency), nil
}

// ParseQuantity parses a share count. Fractional values are accepted.
func ParseQuantity(s string) (Quantity, error) {
	d, err := ParseDecimal(s)
	if err != nil {
		return Quantity{}, err
	}
	return Q(d), nil
}
