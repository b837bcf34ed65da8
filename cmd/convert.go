package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/etnz/zenledger"
	"github.com/etnz/zenledger/renderer"
	"github.com/google/subcommands"
)

type convertCmd struct {
	exchange string
	workers  int
	format   string
	records  string
	dir      string
	prefix   string
	quiet    bool
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert a ZenLedger export into DaLI manual CSV files" }
func (*convertCmd) Usage() string {
	return `zl2dali [-fiat <code>] [-holder <name>] [-transfers disposal|intra] convert [flags] <export>

Convert a ZenLedger export into the three DaLI manual plugin files:
<dir>/<prefix>_in.csv, <dir>/<prefix>_out.csv and <dir>/<prefix>_intra.csv.

Records that cannot be converted are reported and skipped.

`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exchange, "exchange", "", "exchange written when the export leaves it blank")
	f.IntVar(&c.workers, "workers", 1, "number of records converted concurrently")
	f.StringVar(&c.format, "format", "csv", "export format: csv or json")
	f.StringVar(&c.records, "records", "$", "JSONPath of the records array in a json export")
	f.StringVar(&c.dir, "dir", ".", "output directory")
	f.StringVar(&c.prefix, "prefix", "zenledger_manual", "output files prefix")
	f.BoolVar(&c.quiet, "q", false, "do not print the conversion summary")
}

func (c *convertCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "convert requires exactly one export file")
		f.Usage()
		return subcommands.ExitUsageError
	}
	cfg, err := globalConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg.DefaultExchange = c.exchange
	cfg.Workers = c.workers
	conv, err := zenledger.NewConverter(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in configuration: %v\n", err)
		return subcommands.ExitUsageError
	}

	input := f.Arg(0)
	in, err := os.Open(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()
	reader, err := c.newReader(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading export %q: %v\n", input, err)
		return subcommands.ExitFailure
	}

	out, err := createOutputs(c.dir, c.prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output files: %v\n", err)
		return subcommands.ExitFailure
	}
	summary, err := conv.Run(ctx, reader, out.streams)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting %q: %v\n", input, err)
		return subcommands.ExitFailure
	}

	if !c.quiet {
		printMarkdown(renderer.SummaryMarkdown(summary, out.names))
	}
	return subcommands.ExitSuccess
}

func (c *convertCmd) newReader(r io.Reader) (zenledger.RecordReader, error) {
	switch c.format {
	case "csv":
		return zenledger.NewCSVReader(r)
	case "json":
		return zenledger.NewJSONReader(r, c.records)
	}
	return nil, fmt.Errorf("unknown format %q, want csv or json", c.format)
}

// outputs are the files of the three streams.
type outputs struct {
	streams zenledger.Streams
	names   map[zenledger.Stream]string
	files   []*os.File
}

// createOutputs creates '<dir>/<prefix>_<stream>.csv' for each stream, with its header.
func createOutputs(dir, prefix string) (*outputs, error) {
	o := &outputs{names: make(map[zenledger.Stream]string)}
	for _, s := range []zenledger.Stream{zenledger.StreamInbound, zenledger.StreamOutbound, zenledger.StreamIntra} {
		name := filepath.Join(dir, prefix+"_"+s.String()+".csv")
		file, err := os.Create(name)
		if err != nil {
			o.Close()
			return nil, err
		}
		o.files = append(o.files, file)
		o.names[s] = name
		sink, err := zenledger.NewCSVSink(file, s)
		if err != nil {
			o.Close()
			return nil, err
		}
		switch s {
		case zenledger.StreamInbound:
			o.streams.Inbound = sink
		case zenledger.StreamOutbound:
			o.streams.Outbound = sink
		case zenledger.StreamIntra:
			o.streams.Intra = sink
		}
	}
	return o, nil
}

// Close closes all files. Sinks are flushed by the converter.
func (o *outputs) Close() error {
	var errs []error
	for _, f := range o.files {
		errs = append(errs, f.Close())
	}
	return errors.Join(errs...)
}
