package zenledger

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestCSVReader(t *testing.T) {
	export := "\ufeffTimestamp, Type ,IN Amount,IN Currency,Out Amount,Out Currency,Fee Amount,Fee Currency,Exchange(optional),US Based,Txid\n" +
		"2023-01-15T10:30:00Z,buy,0.01,BTC,500,USD,5,USD,Coinbase,, abc123 \n" +
		"2023-01-16T10:30:00Z,Receive,1,ETH\n"
	r, err := NewCSVReader(strings.NewReader(export))
	if err != nil {
		t.Fatalf("NewCSVReader() error: %v", err)
	}
	if got := strings.Join(r.Header(), "|"); got != strings.Join(InputColumns, "|") {
		t.Errorf("Header() = %q, want %q", got, strings.Join(InputColumns, "|"))
	}

	first, err := r.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if first.Row != 1 || first.Type != "buy" || first.Txid != "abc123" || first.Exchange != "Coinbase" {
		t.Errorf("Read() = %+v", first)
	}

	second, err := r.Read()
	if err != nil {
		t.Fatalf("Read() of a short row error: %v", err)
	}
	if second.Row != 2 || second.InCurrency != "ETH" {
		t.Errorf("Read() = %+v", second)
	}
	if err := second.require(ColTxid); !errors.Is(err, ErrMissingField) {
		t.Errorf("short row require(Txid) = %v, want ErrMissingField", err)
	}

	if _, err := r.Read(); err != io.EOF {
		t.Errorf("Read() after the last row = %v, want io.EOF", err)
	}
}

func TestCSVReaderEmpty(t *testing.T) {
	if _, err := NewCSVReader(strings.NewReader("")); err == nil {
		t.Errorf("NewCSVReader() of an empty file expected an error")
	}
}

func TestCSVReaderStrayQuote(t *testing.T) {
	r, err := NewCSVReader(strings.NewReader(exportHeader +
		"2023-01-15T10:30:00Z,staking_reward,1,ETH,,,,,Gemini \"Earn\",,g1\n" +
		"2023-01-16T10:30:00Z,buy,0.01,BTC,500,USD,,,Coinbase,,b1\n"))
	if err != nil {
		t.Fatalf("NewCSVReader() error: %v", err)
	}
	first, err := r.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if first.Exchange != `Gemini "Earn"` || first.Txid != "g1" {
		t.Errorf("Read() = %+v, want exchange %q", first, `Gemini "Earn"`)
	}
	second, err := r.Read()
	if err != nil {
		t.Fatalf("Read() of the second row error: %v", err)
	}
	if second.Row != 2 || second.Txid != "b1" {
		t.Errorf("Read() = %+v, want row 2", second)
	}
}

func TestJSONReader(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
		path string
	}{
		{
			name: "top level array",
			doc:  `[{"Timestamp":"2023-01-15T10:30:00Z","Type":"buy","IN Amount":0.01,"IN Currency":"BTC","Out Amount":"500","Out Currency":"USD","US Based":true,"Txid":"abc123"}]`,
		},
		{
			name: "nested",
			doc:  `{"version":2,"transactions":[{"Timestamp":"2023-01-15T10:30:00Z","Type":"buy","IN Amount":0.01,"IN Currency":"BTC","Out Amount":500,"Out Currency":"USD","US Based":true,"Txid":"abc123"}]}`,
			path: "$.transactions",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewJSONReader(strings.NewReader(tc.doc), tc.path)
			if err != nil {
				t.Fatalf("NewJSONReader() error: %v", err)
			}
			rec, err := r.Read()
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if rec.Row != 1 || rec.InAmount != "0.01" || rec.OutAmount != "500" || rec.USBased != "true" || rec.Txid != "abc123" {
				t.Errorf("Read() = %+v", rec)
			}
			// absent properties are missing columns
			if err := rec.require(ColFeeAmount); !errors.Is(err, ErrMissingField) {
				t.Errorf("require(Fee Amount) = %v, want ErrMissingField", err)
			}
			if _, err := r.Read(); err != io.EOF {
				t.Errorf("Read() after the last record = %v, want io.EOF", err)
			}
		})
	}
}

func TestJSONReaderErrors(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
		path string
	}{
		{"not json", `Timestamp,Type`, ""},
		{"not an array", `{"transactions":{}}`, "$.transactions"},
		{"not objects", `[1,2]`, ""},
		{"bad path", `{"transactions":[]}`, "$.missing"},
	}
	for _, tc := range testCases {
		if _, err := NewJSONReader(strings.NewReader(tc.doc), tc.path); err == nil {
			t.Errorf("%s: NewJSONReader() expected an error", tc.name)
		}
	}
}
