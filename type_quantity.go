package fundboard

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	}
	panic("unreachable")
}

// Quantity represents a number of fund shares. Kept as an exact decimal:
// some source revisions report fractional shares.
type Quantity struct {
	value decimal.Decimal
}

// Q returns a Quantity for the given value.
func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// Decimal returns the exact decimal value.
func (q Quantity) Decimal() decimal.Decimal { return q.value }

func (q Quantity) Equal(r Quantity) bool { return q.value.Equal(r.value) }
func (q Quantity) IsZero() bool          { return q.value.IsZero() }
func (q Quantity) IsNegative() bool      { return q.value.IsNegative() }
func (q Quantity) Add(r Quantity) Quantity {
	return Quantity{value: q.value.Add(r.value)}
}

// String returns the plain decimal representation, e.g. "100" or "12.5".
func (q Quantity) String() string { return q.value.String() }
