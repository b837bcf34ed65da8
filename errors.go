package zenledger

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the per-record problems met during a conversion.
type ErrorKind int

const (
	KindClassification ErrorKind = iota // unrecognized type label, record skipped
	KindParse                           // malformed timestamp or amount, record skipped
	KindMissingField                    // required column absent or empty, record skipped
	KindArithmetic                      // spot price fell back to unknown, record kept
	KindDuplicateID                     // unique id renamed, record kept
)

// Kinds lists every ErrorKind in reporting order.
var Kinds = []ErrorKind{KindClassification, KindParse, KindMissingField, KindArithmetic, KindDuplicateID}

func (k ErrorKind) String() string {
	return [...]string{"unknown type", "parse error", "missing field", "price fallback", "duplicate id"}[k]
}

// Skips reports whether records with this kind of problem are dropped.
func (k ErrorKind) Skips() bool {
	return k == KindClassification || k == KindParse || k == KindMissingField
}

var (
	ErrUnknownType  = errors.New("unknown transaction type")
	ErrMissingField = errors.New("missing field")
)

// RecordError describes a problem with a single record.
type RecordError struct {
	Kind  ErrorKind
	Row   int
	Txid  string
	Label string // type label as found in the export
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("row %d (txid %q, type %q): %s: %v", e.Row, e.Txid, e.Label, e.Kind, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
