package zenledger

import (
	"maps"
	"slices"
)

// Category is the engine's classification of a record, independent of the
// export vocabulary.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryInbound          // receive, airdrop
	CategoryReward           // staking, interest
	CategoryBuy
	CategorySell
	CategorySend
	CategoryTrade
	CategoryFee
)

func (c Category) String() string {
	return [...]string{"unknown", "inbound", "reward", "buy", "sell", "send", "trade", "fee"}[c]
}

// TxType is the value of the "Transaction Type" output column.
type TxType string

const (
	TxReceive  TxType = "Receive"
	TxAirdrop  TxType = "Airdrop"
	TxStaking  TxType = "Staking"
	TxInterest TxType = "Interest"
	TxBuy      TxType = "Buy"
	TxSell     TxType = "Sell"
	TxSend     TxType = "Send"
	TxFee      TxType = "Fee"
)

// Classification is the result of classifying a type label.
type Classification struct {
	Category Category
	TxType   TxType // empty for trades, each leg has its own
	Transfer bool   // plain send or receive, possibly between own accounts
}

// labels maps export type labels, case sensitive.
var labels = map[string]Classification{
	"Receive":           {Category: CategoryInbound, TxType: TxReceive, Transfer: true},
	"airdrop":           {Category: CategoryInbound, TxType: TxAirdrop},
	"staking_reward":    {Category: CategoryReward, TxType: TxStaking},
	"dividend_received": {Category: CategoryReward, TxType: TxInterest},
	"buy":               {Category: CategoryBuy, TxType: TxBuy},
	"sell":              {Category: CategorySell, TxType: TxSell},
	"Send":              {Category: CategorySend, TxType: TxSend, Transfer: true},
	"trade":             {Category: CategoryTrade},
	"fee":               {Category: CategoryFee, TxType: TxFee},
}

// Classify maps a type label to its Classification. Unrecognized labels
// classify as CategoryUnknown, it never fails.
func Classify(label string) Classification {
	if c, ok := labels[label]; ok {
		return c
	}
	return Classification{Category: CategoryUnknown}
}

// Labels returns all recognized type labels, sorted.
func Labels() []string {
	return slices.Sorted(maps.Keys(labels))
}

// Streams returns the streams a record of this classification is written to
// under 'policy', fee entries aside.
func (c Classification) Streams(policy TransferPolicy) []Stream {
	switch {
	case c.Transfer && policy == TransferAsIntra:
		return []Stream{StreamIntra}
	case c.Category == CategoryTrade:
		return []Stream{StreamInbound, StreamOutbound}
	case c.Category == CategoryInbound, c.Category == CategoryReward, c.Category == CategoryBuy:
		return []Stream{StreamInbound}
	case c.Category == CategorySell, c.Category == CategorySend, c.Category == CategoryFee:
		return []Stream{StreamOutbound}
	}
	return nil
}
