// Package zenledger converts exchange exports into the manual ledger format
// understood by tax-lot accounting tools (the dali-rp2 "manual" CSV plugin).
//
// An export contains one row per event, with a single "in" leg, a single "out"
// leg and an optional fee leg. Each row is turned into normalized entries
// written to three streams:
//   - Inbound: acquisitions (buys, receives, airdrops, staking and interest).
//   - Outbound: disposals (sells, sends, fees).
//   - Intra: transfers between accounts of the same owner.
//
// The conversion engine is made of small, independently testable steps:
//   - Classification: the free-text "Type" label is mapped to a closed
//     [Category], see [Classify].
//   - Spot price: derived from the two legs when one of them is denominated in
//     the reference fiat currency, see [SpotPrice].
//   - Fee resolution: the fee is written inline, or as a standalone fee entry
//     when it is denominated in a third currency, see [ResolveFee].
//   - Decomposition: a record becomes zero, one, two or three entries, see
//     [Decomposer].
//
// A [Converter] drives the engine over a [RecordReader] and writes to
// [Streams]. Conversion is deterministic: the same export and [Config] always
// produce byte-identical outputs, even when records are decomposed in
// parallel.
//
// This package serves as the foundational logic for the `zl2dali` command-line
// tool.
package zenledger
