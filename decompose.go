package zenledger

import (
	"github.com/etnz/zenledger/timestamp"
)

// Decomposition is the outcome of decomposing a single record.
type Decomposition struct {
	Classification Classification
	// Entries in write order. Each entry is routed by its own Stream().
	Entries []Entry
	// Warnings are problems that did not prevent the conversion of the
	// record, like a spot price falling back to unknown.
	Warnings []*RecordError
}

// Decomposer turns records into normalized entries. It holds no state besides
// its configuration and is safe for concurrent use.
type Decomposer struct {
	cfg Config
}

// NewDecomposer returns a Decomposer for 'cfg'. 'cfg' is expected to be valid.
func NewDecomposer(cfg Config) *Decomposer {
	return &Decomposer{cfg: cfg}
}

// Decompose converts 'r' into its entries.
//
// It returns a *RecordError when the record must be skipped: unknown type
// label, malformed timestamp or amount, or missing field.
func (d *Decomposer) Decompose(r RawRecord) (Decomposition, error) {
	c := Classify(r.Type)
	out := Decomposition{Classification: c}
	if err := r.require(ColType); err != nil {
		return out, r.fail(KindMissingField, err)
	}
	if c.Category == CategoryUnknown {
		return out, r.fail(KindClassification, ErrUnknownType)
	}
	if err := r.require(ColTimestamp, ColTxid); err != nil {
		return out, r.fail(KindMissingField, err)
	}
	ts, err := timestamp.Normalize(r.Timestamp)
	if err != nil {
		return out, r.fail(KindParse, err)
	}
	l, rerr := r.parseLegs()
	if rerr != nil {
		return out, rerr
	}

	price, err := SpotPrice(l.InCurrency, l.In, l.OutCurrency, l.Out, d.cfg.Fiat)
	if err != nil {
		out.Warnings = append(out.Warnings, r.fail(KindArithmetic, err))
		price = Price{}
	}

	h := header{
		ID:        r.ID(),
		Timestamp: ts,
		Exchange:  r.Exchange,
		Holder:    d.cfg.Holder,
		TxType:    c.TxType,
		SpotPrice: price,
	}
	if h.Exchange == "" {
		h.Exchange = d.cfg.DefaultExchange
	}

	var entries []Entry
	switch c.Category {
	case CategoryInbound, CategoryReward, CategoryBuy:
		if c.Transfer && d.cfg.Transfers == TransferAsIntra {
			entries, rerr = d.intraIn(r, h, l)
		} else {
			entries, rerr = d.inbound(r, h, l)
		}
	case CategorySell, CategorySend, CategoryFee:
		if c.Transfer && d.cfg.Transfers == TransferAsIntra {
			entries, rerr = d.intraOut(r, h, l)
		} else {
			entries, rerr = d.outbound(r, h, l, c.Category == CategoryFee)
		}
	case CategoryTrade:
		entries, rerr = d.trade(r, h, l)
	}
	if rerr != nil {
		return out, rerr
	}
	out.Entries = entries
	return out, nil
}

// inbound builds the entry for an acquisition of the in leg.
func (d *Decomposer) inbound(r RawRecord, h header, l legs) ([]Entry, *RecordError) {
	if err := r.requireLeg(l.In, ColInAmount, l.InCurrency, ColInCurrency); err != nil {
		return nil, err
	}
	h.Asset = l.InCurrency
	e := InboundEntry{header: h, CryptoIn: l.In}
	if l.OutCurrency == d.cfg.Fiat {
		e.FiatInNoFee = l.Out
	}
	fee := ResolveFee(l.Fee, l.InCurrency, d.cfg.Fiat, Incoming)
	entries := []Entry{e.withFee(fee)}
	if fee.Standalone != nil {
		entries = append(entries, newFeeEntry(h, *fee.Standalone, d.cfg.Fiat))
	}
	return entries, nil
}

// outbound builds the entry for a disposal of the out leg. Explicit fee
// records without an out leg dispose of the fee currency itself.
func (d *Decomposer) outbound(r RawRecord, h header, l legs, explicitFee bool) ([]Entry, *RecordError) {
	if explicitFee && l.OutCurrency == "" && !l.Out.IsSet() {
		l.OutCurrency, l.Out = l.Fee.Currency, Zero
	}
	if err := r.requireLeg(l.Out, ColOutAmount, l.OutCurrency, ColOutCurrency); err != nil {
		return nil, err
	}
	h.Asset = l.OutCurrency
	e := OutboundEntry{header: h, CryptoOutNoFee: l.Out}
	if l.InCurrency == d.cfg.Fiat {
		e.FiatOutNoFee = l.In
	}
	fee := ResolveFee(l.Fee, l.OutCurrency, d.cfg.Fiat, Outgoing)
	entries := []Entry{e.withFee(fee)}
	if fee.Standalone != nil {
		entries = append(entries, newFeeEntry(h, *fee.Standalone, d.cfg.Fiat))
	}
	return entries, nil
}

// trade builds a "-buy" inbound entry for the in leg and a "-sell" outbound
// entry for the out leg. The fee is charged once, on the sell leg.
func (d *Decomposer) trade(r RawRecord, h header, l legs) ([]Entry, *RecordError) {
	if err := r.requireLeg(l.In, ColInAmount, l.InCurrency, ColInCurrency); err != nil {
		return nil, err
	}
	if err := r.requireLeg(l.Out, ColOutAmount, l.OutCurrency, ColOutCurrency); err != nil {
		return nil, err
	}

	bh := h.suffixed("-buy")
	bh.Asset, bh.TxType = l.InCurrency, TxBuy
	buy := InboundEntry{header: bh, CryptoIn: l.In}
	if l.OutCurrency == d.cfg.Fiat {
		buy.FiatInNoFee, buy.FiatInWithFee = l.Out, l.Out
	}

	sh := h.suffixed("-sell")
	sh.Asset, sh.TxType = l.OutCurrency, TxSell
	sell := OutboundEntry{header: sh, CryptoOutNoFee: l.Out}
	if l.InCurrency == d.cfg.Fiat {
		sell.FiatOutNoFee = l.In
	}
	fee := ResolveFee(l.Fee, l.OutCurrency, d.cfg.Fiat, Outgoing)

	entries := []Entry{buy, sell.withFee(fee)}
	if fee.Standalone != nil {
		entries = append(entries, newFeeEntry(h, *fee.Standalone, d.cfg.Fiat))
	}
	return entries, nil
}

// intraOut builds the intra entry of a send whose destination is unknown.
// A fee in the sent asset is the difference between sent and received.
func (d *Decomposer) intraOut(r RawRecord, h header, l legs) ([]Entry, *RecordError) {
	if err := r.requireLeg(l.Out, ColOutAmount, l.OutCurrency, ColOutCurrency); err != nil {
		return nil, err
	}
	e := IntraEntry{
		ID:             h.ID,
		Timestamp:      h.Timestamp,
		Asset:          l.OutCurrency,
		FromExchange:   h.Exchange,
		FromHolder:     h.Holder,
		ToExchange:     Unknown,
		ToHolder:       Unknown,
		SpotPrice:      h.SpotPrice,
		CryptoSent:     l.Out,
		CryptoReceived: l.Out,
		Notes:          "Destination unknown: reconcile on Unique ID",
	}
	fee := ResolveFee(l.Fee, l.OutCurrency, d.cfg.Fiat, Outgoing)
	if fee.CryptoFee.IsPositive() {
		e.CryptoReceived = l.Out.Sub(fee.CryptoFee)
	}
	return d.intraFee(e, h, l, fee), nil
}

// intraIn builds the intra entry of a receive whose origin is unknown.
func (d *Decomposer) intraIn(r RawRecord, h header, l legs) ([]Entry, *RecordError) {
	if err := r.requireLeg(l.In, ColInAmount, l.InCurrency, ColInCurrency); err != nil {
		return nil, err
	}
	e := IntraEntry{
		ID:             h.ID,
		Timestamp:      h.Timestamp,
		Asset:          l.InCurrency,
		FromExchange:   Unknown,
		FromHolder:     Unknown,
		ToExchange:     h.Exchange,
		ToHolder:       h.Holder,
		SpotPrice:      h.SpotPrice,
		CryptoSent:     l.In,
		CryptoReceived: l.In,
		Notes:          "Origin unknown: reconcile on Unique ID",
	}
	fee := ResolveFee(l.Fee, l.InCurrency, d.cfg.Fiat, Outgoing)
	if fee.CryptoFee.IsPositive() {
		e.CryptoSent = l.In.Add(fee.CryptoFee)
	}
	return d.intraFee(e, h, l, fee), nil
}

// intraFee appends the standalone fee entry of an intra transfer, intra
// entries have no fee column other than the crypto difference.
func (d *Decomposer) intraFee(e IntraEntry, h header, l legs, fee FeeResolution) []Entry {
	entries := []Entry{e}
	if l.Fee.Amount.IsPositive() && !fee.CryptoFee.IsPositive() {
		entries = append(entries, newFeeEntry(h, l.Fee, d.cfg.Fiat))
	}
	return entries
}
