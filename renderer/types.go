package renderer

import (
	"strings"

	"github.com/etnz/zenledger"
)

// Types describes how each recognized type label is converted.
type Types struct {
	Fiat   string
	Policy string
	Rows   []TypeRow
}

// TypeRow is the conversion of a single type label.
type TypeRow struct {
	Label    string
	Category string
	TxType   string
	Streams  string
}

// NewTypes lists the conversion of every recognized label under 'cfg'.
func NewTypes(cfg zenledger.Config) *Types {
	t := &Types{Fiat: cfg.Fiat, Policy: cfg.Transfers.String()}
	for _, label := range zenledger.Labels() {
		c := zenledger.Classify(label)
		row := TypeRow{Label: label, Category: c.Category.String(), TxType: string(c.TxType)}
		if c.Category == zenledger.CategoryTrade {
			row.TxType = "Buy + Sell"
		}
		var streams []string
		for _, s := range c.Streams(cfg.Transfers) {
			streams = append(streams, s.String())
		}
		row.Streams = strings.Join(streams, " + ")
		t.Rows = append(t.Rows, row)
	}
	return t
}

// RenderTypes renders the Types struct to a markdown string.
func RenderTypes(t *Types) string {
	partials := map[string]string{
		"types_table": "types_table.md",
	}
	// The transfer note depends on the policy in use.
	if t.Policy == zenledger.TransferAsIntra.String() {
		partials["types_transfers"] = "types_transfers_intra.md"
	} else {
		partials["types_transfers"] = "types_transfers_disposal.md"
	}
	return renderTemplate("types", "types.md", partials, t)
}
