package zenledger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// testConfig is the configuration used by tests: USD reference, default holder.
func testConfig() Config { return DefaultConfig() }

// collector is a Sink that keeps entries in memory.
type collector struct {
	entries []Entry
}

func (c *collector) Write(e Entry) error {
	c.entries = append(c.entries, e)
	return nil
}

// ids returns the unique ids collected, in write order.
func (c *collector) ids() []string {
	var ids []string
	for _, e := range c.entries {
		ids = append(ids, e.UniqueID())
	}
	return ids
}

// collectors returns Streams backed by collectors.
func collectors() (Streams, *collector, *collector, *collector) {
	in, out, intra := &collector{}, &collector{}, &collector{}
	return Streams{Inbound: in, Outbound: out, Intra: intra}, in, out, intra
}

// record builds a RawRecord from 'csvLine' using the full export header.
func record(t *testing.T, csvLine string) RawRecord {
	t.Helper()
	r, err := NewCSVReader(strings.NewReader(strings.Join(InputColumns, ",") + "\n" + csvLine + "\n"))
	if err != nil {
		t.Fatalf("NewCSVReader() error: %v", err)
	}
	rec, err := r.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	return rec
}

// convertCSV runs a whole conversion of 'export' and returns the three CSV outputs.
func convertCSV(t *testing.T, cfg Config, export string) (in, out, intra string, summary *Summary) {
	t.Helper()
	var bin, bout, bintra bytes.Buffer
	streams := Streams{}
	var err error
	if streams.Inbound, err = NewCSVSink(&bin, StreamInbound); err != nil {
		t.Fatal(err)
	}
	if streams.Outbound, err = NewCSVSink(&bout, StreamOutbound); err != nil {
		t.Fatal(err)
	}
	if streams.Intra, err = NewCSVSink(&bintra, StreamIntra); err != nil {
		t.Fatal(err)
	}
	reader, err := NewCSVReader(strings.NewReader(export))
	if err != nil {
		t.Fatalf("NewCSVReader() error: %v", err)
	}
	conv, err := NewConverter(cfg)
	if err != nil {
		t.Fatalf("NewConverter() error: %v", err)
	}
	conv.SetLogger(testLogger(t))
	summary, err = conv.Run(context.Background(), reader, streams)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	return bin.String(), bout.String(), bintra.String(), summary
}
