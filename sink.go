package zenledger

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Sink is an append-only destination for the entries of one stream.
type Sink interface {
	Write(Entry) error
}

// Streams gathers the sinks of the three output streams.
type Streams struct {
	Inbound  Sink
	Outbound Sink
	Intra    Sink
}

// sink returns the sink for 's'.
func (s Streams) sink(stream Stream) (Sink, error) {
	var sink Sink
	switch stream {
	case StreamInbound:
		sink = s.Inbound
	case StreamOutbound:
		sink = s.Outbound
	case StreamIntra:
		sink = s.Intra
	}
	if sink == nil {
		return nil, fmt.Errorf("no sink for stream %q", stream)
	}
	return sink, nil
}

// flush flushes every sink that buffers its writes.
func (s Streams) flush() error {
	for _, sink := range []Sink{s.Inbound, s.Outbound, s.Intra} {
		if f, ok := sink.(interface{ Flush() error }); ok {
			if err := f.Flush(); err != nil {
				return err
			}
		}
	}
	return nil
}

// CSVSink writes the entries of a stream as CSV rows, after the stream header.
type CSVSink struct {
	w      *csv.Writer
	stream Stream
}

// NewCSVSink writes the header of 'stream' to 'w' and returns a sink for its entries.
func NewCSVSink(w io.Writer, stream Stream) (*CSVSink, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(stream.Columns()); err != nil {
		return nil, fmt.Errorf("cannot write %s header: %w", stream, err)
	}
	return &CSVSink{w: cw, stream: stream}, nil
}

// Write appends 'e' to the stream. 'e' must belong to the sink's stream.
func (s *CSVSink) Write(e Entry) error {
	if e.Stream() != s.stream {
		return fmt.Errorf("entry %q belongs to stream %q, not %q", e.UniqueID(), e.Stream(), s.stream)
	}
	return s.w.Write(e.Row())
}

// Flush writes any buffered data to the underlying writer.
func (s *CSVSink) Flush() error {
	s.w.Flush()
	return s.w.Error()
}
