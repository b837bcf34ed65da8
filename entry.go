package zenledger

// Stream identifies one of the three output destinations.
type Stream int

const (
	StreamInbound Stream = iota
	StreamOutbound
	StreamIntra
)

// Streams names, also used as output file suffixes.
func (s Stream) String() string { return [...]string{"in", "out", "intra"}[s] }

// Columns returns the fixed header of the stream.
func (s Stream) Columns() []string {
	switch s {
	case StreamInbound:
		return []string{"Unique ID", "Timestamp", "Asset", "Exchange", "Holder", "Transaction Type", "Spot Price",
			"Crypto In", "Crypto Fee", "USD In No Fee", "USD In With Fee", "USD Fee", "Notes"}
	case StreamOutbound:
		return []string{"Unique ID", "Timestamp", "Asset", "Exchange", "Holder", "Transaction Type", "Spot Price",
			"Crypto Out No Fee", "Crypto Fee", "Crypto Out With Fee", "USD Out No Fee", "USD Fee", "Notes"}
	default:
		return []string{"Unique ID", "Timestamp", "Asset", "From Exchange", "From Holder", "To Exchange", "To Holder",
			"Spot Price", "Crypto Sent", "Crypto Received", "Notes"}
	}
}

// Unknown is written in exchange and holder columns that the export cannot fill.
const Unknown = "unknown"

// generatedFeeNote marks standalone fee entries.
const generatedFeeNote = "Generated fee transaction"

// Entry is a normalized ledger entry.
type Entry interface {
	Stream() Stream
	UniqueID() string
	// WithUniqueID returns a copy of the entry with another id.
	WithUniqueID(id string) Entry
	// Row returns the entry values in the stream's column order.
	Row() []string
}

// header holds the columns shared by inbound and outbound entries.
type header struct {
	ID        string
	Timestamp string
	Asset     string
	Exchange  string
	Holder    string
	TxType    TxType
	SpotPrice Price
	Notes     string
}

func (h header) UniqueID() string { return h.ID }

// suffixed returns a copy of the header with 'suffix' appended to its id.
func (h header) suffixed(suffix string) header {
	h.ID += suffix
	return h
}

// InboundEntry is an acquisition.
type InboundEntry struct {
	header
	CryptoIn      Amount
	CryptoFee     Amount
	FiatInNoFee   Amount
	FiatInWithFee Amount
	FiatFee       Amount
}

func (InboundEntry) Stream() Stream { return StreamInbound }

func (e InboundEntry) WithUniqueID(id string) Entry {
	e.ID = id
	return e
}

func (e InboundEntry) Row() []string {
	return []string{e.ID, e.Timestamp, e.Asset, e.Exchange, e.Holder, string(e.TxType), e.SpotPrice.String(),
		e.CryptoIn.String(), e.CryptoFee.String(), e.FiatInNoFee.String(), e.FiatInWithFee.String(), e.FiatFee.String(), e.Notes}
}

// withFee applies a resolved fee. The fiat total including the fee is derived
// when the fiat value is known.
func (e InboundEntry) withFee(f FeeResolution) InboundEntry {
	e.CryptoFee, e.FiatFee = f.CryptoFee, f.FiatFee
	if e.FiatInNoFee.IsSet() {
		e.FiatInWithFee = e.FiatInNoFee.Add(e.FiatFee)
	}
	return e
}

// OutboundEntry is a disposal.
type OutboundEntry struct {
	header
	CryptoOutNoFee   Amount
	CryptoFee        Amount
	CryptoOutWithFee Amount
	FiatOutNoFee     Amount
	FiatFee          Amount
}

func (OutboundEntry) Stream() Stream { return StreamOutbound }

func (e OutboundEntry) WithUniqueID(id string) Entry {
	e.ID = id
	return e
}

func (e OutboundEntry) Row() []string {
	return []string{e.ID, e.Timestamp, e.Asset, e.Exchange, e.Holder, string(e.TxType), e.SpotPrice.String(),
		e.CryptoOutNoFee.String(), e.CryptoFee.String(), e.CryptoOutWithFee.String(), e.FiatOutNoFee.String(), e.FiatFee.String(), e.Notes}
}

// withFee applies a resolved fee. The crypto total including the fee is
// derived when the crypto amount is known.
func (e OutboundEntry) withFee(f FeeResolution) OutboundEntry {
	e.CryptoFee, e.FiatFee = f.CryptoFee, f.FiatFee
	if e.CryptoOutNoFee.IsSet() {
		e.CryptoOutWithFee = e.CryptoOutNoFee.Add(e.CryptoFee)
	}
	return e
}

// newFeeEntry creates the standalone entry for a fee that cannot be written
// inline. Its id is the record id suffixed with "-fee".
func newFeeEntry(h header, fee FeeLeg, fiat string) OutboundEntry {
	h = h.suffixed("-fee")
	h.Asset = fee.Currency
	h.TxType = TxFee
	h.SpotPrice = Price{}
	h.Notes = generatedFeeNote
	e := OutboundEntry{header: h, CryptoOutNoFee: Zero}
	if fee.Currency == fiat {
		return e.withFee(FeeResolution{FiatFee: fee.Amount, CryptoFee: Zero})
	}
	return e.withFee(FeeResolution{CryptoFee: fee.Amount})
}

// IntraEntry is a transfer between two accounts of the same owner.
type IntraEntry struct {
	ID             string
	Timestamp      string
	Asset          string
	FromExchange   string
	FromHolder     string
	ToExchange     string
	ToHolder       string
	SpotPrice      Price
	CryptoSent     Amount
	CryptoReceived Amount
	Notes          string
}

func (IntraEntry) Stream() Stream     { return StreamIntra }
func (e IntraEntry) UniqueID() string { return e.ID }

func (e IntraEntry) WithUniqueID(id string) Entry {
	e.ID = id
	return e
}

func (e IntraEntry) Row() []string {
	return []string{e.ID, e.Timestamp, e.Asset, e.FromExchange, e.FromHolder, e.ToExchange, e.ToHolder,
		e.SpotPrice.String(), e.CryptoSent.String(), e.CryptoReceived.String(), e.Notes}
}
