package zenledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned for amount columns that are not non-negative decimals.
var ErrInvalidAmount = errors.New("invalid amount")

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Amount is a quantity read from, or written to, an amount column.
//
// The zero value is an absent amount, it renders as an empty column and is
// distinct from an explicit zero.
type Amount struct {
	value decimal.Decimal
	set   bool
}

// Zero is an explicit zero amount.
var Zero = Amount{value: decimal.Zero, set: true}

// A returns a present Amount.
func A[T float64 | int | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value), set: true}
}

// ParseAmount parses an amount column. Blank columns are absent amounts.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w %q: %v", ErrInvalidAmount, s, err)
	}
	return Amount{value: d, set: true}, nil
}

func (a Amount) IsSet() bool         { return a.set }
func (a Amount) IsZero() bool        { return a.value.IsZero() }
func (a Amount) IsPositive() bool    { return a.set && a.value.IsPositive() }
func (a Amount) IsNegative() bool    { return a.set && a.value.IsNegative() }
func (a Amount) Equal(b Amount) bool { return a.set == b.set && a.value.Equal(b.value) }

// Add returns a+b. An absent operand counts as zero, the sum of two absent
// amounts is absent.
func (a Amount) Add(b Amount) Amount {
	return Amount{value: a.value.Add(b.value), set: a.set || b.set}
}

// Sub returns a-b with the same absence rule as Add.
func (a Amount) Sub(b Amount) Amount {
	return Amount{value: a.value.Sub(b.value), set: a.set || b.set}
}

// Div returns a/b. It panics if b is zero, callers must check.
func (a Amount) Div(b Amount) Amount {
	return Amount{value: a.value.Div(b.value), set: a.set && b.set}
}

// String returns the canonical decimal form, or "" for an absent amount.
func (a Amount) String() string {
	if !a.set {
		return ""
	}
	return a.value.String()
}
