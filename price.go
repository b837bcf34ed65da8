package zenledger

import (
	"errors"
	"fmt"
)

// UnknownPrice is the spot price written when it cannot be derived from the
// record itself. Downstream tools resolve it from their own price sources.
const UnknownPrice = "__unknown"

// ErrDivisionByZero is returned when the divisor leg of a spot price is zero or absent.
var ErrDivisionByZero = errors.New("division by zero")

// Price is a unit price in the reference fiat currency. The zero value is the
// unknown price.
type Price struct {
	value Amount
}

// Known reports whether the price has been derived.
func (p Price) Known() bool { return p.value.IsSet() }

// String returns the price, or UnknownPrice.
func (p Price) String() string {
	if !p.Known() {
		return UnknownPrice
	}
	return p.value.String()
}

// SpotPrice derives the unit price of the crypto leg of a record.
//
// When the in leg is in 'fiat' the price is inAmt/outAmt, when the out leg is
// in 'fiat' it is outAmt/inAmt, otherwise the price is unknown: no cross rate
// is ever looked up. It fails with ErrDivisionByZero when the crypto leg amount
// is zero or absent.
func SpotPrice(inCur string, inAmt Amount, outCur string, outAmt Amount, fiat string) (Price, error) {
	if fiat == "" {
		return Price{}, nil
	}
	switch fiat {
	case inCur:
		return ratio(inAmt, outAmt)
	case outCur:
		return ratio(outAmt, inAmt)
	}
	return Price{}, nil
}

func ratio(fiat, crypto Amount) (Price, error) {
	if !crypto.IsSet() || crypto.IsZero() {
		return Price{}, fmt.Errorf("spot price %q/%q: %w", fiat, crypto, ErrDivisionByZero)
	}
	if !fiat.IsPositive() {
		// a free transfer has no meaningful unit price
		return Price{}, nil
	}
	return Price{value: fiat.Div(crypto)}, nil
}
