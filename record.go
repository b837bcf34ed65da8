package zenledger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Export column names.
const (
	ColTimestamp   = "Timestamp"
	ColType        = "Type"
	ColInAmount    = "IN Amount"
	ColInCurrency  = "IN Currency"
	ColOutAmount   = "Out Amount"
	ColOutCurrency = "Out Currency"
	ColFeeAmount   = "Fee Amount"
	ColFeeCurrency = "Fee Currency"
	ColExchange    = "Exchange(optional)"
	ColUSBased     = "US Based"
	ColTxid        = "Txid"
)

// InputColumns is the export schema, in file order.
var InputColumns = []string{
	ColTimestamp, ColType, ColInAmount, ColInCurrency, ColOutAmount, ColOutCurrency,
	ColFeeAmount, ColFeeCurrency, ColExchange, ColUSBased, ColTxid,
}

// idSpace namespaces the ids generated for records without a Txid.
var idSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/etnz/zenledger/txid"))

// RawRecord is one row of an export. Values are kept verbatim.
type RawRecord struct {
	Row         int // 1-based position of the record in the export
	Timestamp   string
	Type        string
	InAmount    string
	InCurrency  string
	OutAmount   string
	OutCurrency string
	FeeAmount   string
	FeeCurrency string
	Exchange    string
	USBased     string
	Txid        string

	absent map[string]bool // columns missing from the row
}

// NewRawRecord builds a record from column values. Columns absent from
// 'values' are remembered, so that decomposition can report them.
func NewRawRecord(row int, values map[string]string) RawRecord {
	r := RawRecord{Row: row}
	fields := map[string]*string{
		ColTimestamp:   &r.Timestamp,
		ColType:        &r.Type,
		ColInAmount:    &r.InAmount,
		ColInCurrency:  &r.InCurrency,
		ColOutAmount:   &r.OutAmount,
		ColOutCurrency: &r.OutCurrency,
		ColFeeAmount:   &r.FeeAmount,
		ColFeeCurrency: &r.FeeCurrency,
		ColExchange:    &r.Exchange,
		ColUSBased:     &r.USBased,
		ColTxid:        &r.Txid,
	}
	for col, field := range fields {
		v, ok := values[col]
		if !ok {
			if r.absent == nil {
				r.absent = make(map[string]bool)
			}
			r.absent[col] = true
			continue
		}
		*field = strings.TrimSpace(v)
	}
	return r
}

// require returns an ErrMissingField error for the first column of 'cols'
// that is absent from the row.
func (r RawRecord) require(cols ...string) error {
	for _, col := range cols {
		if r.absent[col] {
			return fmt.Errorf("%w: column %q", ErrMissingField, col)
		}
	}
	return nil
}

// ID returns the record's unique id: its Txid, or a name based UUID derived
// from the record's content when the Txid is blank.
func (r RawRecord) ID() string {
	if r.Txid != "" {
		return r.Txid
	}
	name := strings.Join([]string{strconv.Itoa(r.Row), r.Timestamp, r.Type,
		r.InAmount, r.InCurrency, r.OutAmount, r.OutCurrency, r.FeeAmount, r.FeeCurrency, r.Exchange}, "\x1f")
	return uuid.NewSHA1(idSpace, []byte(name)).String()
}

// fail wraps 'err' into a RecordError for this record.
func (r RawRecord) fail(kind ErrorKind, err error) *RecordError {
	return &RecordError{Kind: kind, Row: r.Row, Txid: r.Txid, Label: r.Type, Err: err}
}

// legs is the parsed content of a record's amount columns.
type legs struct {
	In          Amount
	InCurrency  string
	Out         Amount
	OutCurrency string
	Fee         FeeLeg
}

// parseLegs parses the amount columns of a record.
func (r RawRecord) parseLegs() (legs, *RecordError) {
	l := legs{InCurrency: r.InCurrency, OutCurrency: r.OutCurrency, Fee: FeeLeg{Currency: r.FeeCurrency}}
	for _, a := range []struct {
		col    string
		src    string
		dst    *Amount
		signed bool // negative fees are ignored, not rejected
	}{
		{ColInAmount, r.InAmount, &l.In, false},
		{ColOutAmount, r.OutAmount, &l.Out, false},
		{ColFeeAmount, r.FeeAmount, &l.Fee.Amount, true},
	} {
		v, err := ParseAmount(a.src)
		if err != nil {
			return l, r.fail(KindParse, fmt.Errorf("column %q: %w", a.col, err))
		}
		if v.IsNegative() && !a.signed {
			return l, r.fail(KindParse, fmt.Errorf("column %q: %w %q: negative", a.col, ErrInvalidAmount, a.src))
		}
		*a.dst = v
	}
	if l.Fee.Amount.IsPositive() && l.Fee.Currency == "" {
		return l, r.fail(KindMissingField, fmt.Errorf("%w: column %q is empty for a fee of %s", ErrMissingField, ColFeeCurrency, l.Fee.Amount))
	}
	return l, nil
}

// requireLeg checks that a leg has both an amount and a currency.
func (r RawRecord) requireLeg(amount Amount, amountCol, currency, currencyCol string) *RecordError {
	if err := r.require(amountCol, currencyCol); err != nil {
		return r.fail(KindMissingField, err)
	}
	switch {
	case !amount.IsSet():
		return r.fail(KindMissingField, fmt.Errorf("%w: column %q is empty", ErrMissingField, amountCol))
	case currency == "":
		return r.fail(KindMissingField, fmt.Errorf("%w: column %q is empty", ErrMissingField, currencyCol))
	}
	return nil
}
