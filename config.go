package zenledger

import (
	"errors"
	"fmt"

	"github.com/Rhymond/go-money"
)

// TransferPolicy selects how plain "Send" and "Receive" records are read.
type TransferPolicy int

const (
	// TransferAsDisposal writes sends as outbound and receives as inbound
	// entries: the counterparty is someone else.
	TransferAsDisposal TransferPolicy = iota
	// TransferAsIntra writes sends and receives as intra entries between two
	// accounts of the same owner, the unknown side being reconciled later on
	// the entry's Unique ID.
	TransferAsIntra
)

func (p TransferPolicy) String() string { return [...]string{"disposal", "intra"}[p] }

// ParseTransferPolicy parses the name of a TransferPolicy.
func ParseTransferPolicy(s string) (TransferPolicy, error) {
	switch s {
	case "disposal":
		return TransferAsDisposal, nil
	case "intra":
		return TransferAsIntra, nil
	}
	return 0, fmt.Errorf("unknown transfer policy %q, want \"disposal\" or \"intra\"", s)
}

// Config holds the conversion settings.
type Config struct {
	Fiat            string         // reference fiat currency code, e.g. "USD"
	Holder          string         // holder written on every entry
	DefaultExchange string         // exchange used when the export leaves it blank
	Transfers       TransferPolicy // how to read sends and receives
	Workers         int            // number of records decomposed concurrently
}

// DefaultConfig returns the settings matching the DaLI manual plugin defaults.
func DefaultConfig() Config {
	return Config{Fiat: "USD", Holder: Unknown, Workers: 1}
}

// Validate checks that the configuration can be used for a conversion.
func (c Config) Validate() error {
	var errs []error
	if c.Fiat == "" {
		errs = append(errs, errors.New("reference fiat currency is missing"))
	} else if money.GetCurrency(c.Fiat) == nil {
		errs = append(errs, fmt.Errorf("reference fiat currency %q is not an ISO 4217 currency", c.Fiat))
	}
	if c.Holder == "" {
		errs = append(errs, errors.New("holder is missing"))
	}
	if c.Transfers != TransferAsDisposal && c.Transfers != TransferAsIntra {
		errs = append(errs, fmt.Errorf("invalid transfer policy %d", c.Transfers))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	return errors.Join(errs...)
}
