package zenledger

// Side tells on which side of the ledger a fee is being resolved.
type Side int

const (
	Incoming Side = iota // the entry acquires the asset
	Outgoing             // the entry disposes of the asset
)

// FeeLeg is the fee part of a record.
type FeeLeg struct {
	Amount   Amount
	Currency string
}

// FeeResolution is the representation chosen for a fee.
//
// At most one of the inline fields and Standalone carries the fee. CryptoFee
// can also be an explicit zero on outgoing entries paying their fee in fiat.
type FeeResolution struct {
	CryptoFee  Amount  // inline fee in the entry's asset
	FiatFee    Amount  // inline fee in the reference fiat currency
	Standalone *FeeLeg // fee that needs its own entry
}

// Inline reports whether the fee is carried by the entry itself.
func (r FeeResolution) Inline() bool {
	return r.CryptoFee.IsPositive() || r.FiatFee.IsPositive()
}

// ResolveFee decides how 'fee' is represented on an entry for 'asset'.
//
//   - no positive fee: nothing.
//   - fee in 'fiat': inline fiat fee; outgoing entries also get an explicit
//     zero crypto fee.
//   - fee in 'asset': inline crypto fee.
//   - any other currency: a standalone fee entry.
func ResolveFee(fee FeeLeg, asset, fiat string, side Side) FeeResolution {
	if !fee.Amount.IsPositive() {
		return FeeResolution{}
	}
	switch fee.Currency {
	case fiat:
		r := FeeResolution{FiatFee: fee.Amount}
		if side == Outgoing {
			r.CryptoFee = Zero
		}
		return r
	case asset:
		return FeeResolution{CryptoFee: fee.Amount}
	}
	return FeeResolution{Standalone: &fee}
}
