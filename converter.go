package zenledger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Converter runs the conversion of a whole export.
//
// A Converter is meant for a single run: it remembers the ids already emitted
// to keep them unique.
type Converter struct {
	cfg     Config
	dec     *Decomposer
	ids     *IDRegistry
	summary *Summary
	logger  *log.Logger
}

// NewConverter returns a Converter for a valid 'cfg'.
func NewConverter(cfg Config) (*Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &Converter{
		cfg:     cfg,
		dec:     NewDecomposer(cfg),
		ids:     NewIDRegistry(),
		summary: newSummary(),
		logger:  log.Default(),
	}, nil
}

// SetLogger replaces the logger receiving per-record diagnostics.
func (c *Converter) SetLogger(l *log.Logger) { c.logger = l }

// Run converts every record of 'r' and writes the entries to 'out'.
//
// Per-record problems are logged, accounted in the returned Summary and never
// stop the conversion. Run only fails on read or write errors, or when 'ctx'
// is cancelled. Within each stream, entries are written in input order.
func (c *Converter) Run(ctx context.Context, r RecordReader, out Streams) (*Summary, error) {
	var err error
	if c.cfg.Workers > 1 {
		err = c.runParallel(ctx, r, out)
	} else {
		err = c.runSequential(ctx, r, out)
	}
	if ferr := out.flush(); err == nil && ferr != nil {
		err = fmt.Errorf("cannot flush output: %w", ferr)
	}
	return c.summary, err
}

// job is a record on its way through the conversion.
type job struct {
	index int
	rec   RawRecord
	dec   Decomposition
	err   error
}

func (c *Converter) runSequential(ctx context.Context, r RecordReader, out Streams) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		j := job{rec: rec}
		if j.err, err = readFailure(err); err != nil {
			return err
		}
		if j.err == nil {
			j.dec, j.err = c.dec.Decompose(rec)
		}
		if err := c.emit(j, out); err != nil {
			return err
		}
	}
}

// runParallel decomposes records on cfg.Workers goroutines. A single writer
// puts the results back in input order before emitting them.
func (c *Converter) runParallel(ctx context.Context, r RecordReader, out Streams) error {
	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan job, c.cfg.Workers)
	results := make(chan job, c.cfg.Workers)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; ; i++ {
			rec, err := r.Read()
			if errors.Is(err, io.EOF) {
				return nil
			}
			j := job{index: i, rec: rec}
			if j.err, err = readFailure(err); err != nil {
				return err
			}
			select {
			case jobs <- j:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	var workers sync.WaitGroup
	for range c.cfg.Workers {
		workers.Add(1)
		g.Go(func() error {
			defer workers.Done()
			for j := range jobs {
				if j.err == nil {
					j.dec, j.err = c.dec.Decompose(j.rec)
				}
				select {
				case results <- j:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		workers.Wait()
		close(results)
	}()

	g.Go(func() error {
		pending := make(map[int]job)
		next := 0
		for j := range results {
			pending[j.index] = j
			for p, ok := pending[next]; ok; p, ok = pending[next] {
				delete(pending, next)
				if err := c.emit(p, out); err != nil {
					return err
				}
				next++
			}
		}
		return ctx.Err()
	})

	return g.Wait()
}

// readFailure tells a reader error that skips one record from a fatal one.
func readFailure(err error) (skip, fatal error) {
	var rerr *RecordError
	if errors.As(err, &rerr) {
		return rerr, nil
	}
	return nil, err
}

// emit accounts for a decomposed record and writes its entries.
func (c *Converter) emit(j job, out Streams) error {
	c.summary.Records++
	for _, w := range j.dec.Warnings {
		c.logger.Printf("warning: %v, using %s", w, UnknownPrice)
		c.summary.record(w)
	}
	if j.err != nil {
		var rerr *RecordError
		if !errors.As(j.err, &rerr) {
			rerr = j.rec.fail(KindParse, j.err)
		}
		if rerr.Kind == KindClassification {
			c.logger.Printf("skipping unknown transaction type %q at row %d (txid %q)", j.rec.Type, j.rec.Row, j.rec.Txid)
		} else {
			c.logger.Printf("skipping %v", rerr)
		}
		c.summary.record(rerr)
		return nil
	}

	for _, e := range j.dec.Entries {
		if id, renamed := c.ids.Claim(e.UniqueID()); renamed {
			dup := j.rec.fail(KindDuplicateID, fmt.Errorf("unique id %q already used, renamed %q", e.UniqueID(), id))
			c.logger.Printf("warning: %v", dup)
			c.summary.record(dup)
			e = e.WithUniqueID(id)
		}
		sink, err := out.sink(e.Stream())
		if err != nil {
			return err
		}
		if err := sink.Write(e); err != nil {
			return fmt.Errorf("cannot write %s entry %q: %w", e.Stream(), e.UniqueID(), err)
		}
		c.summary.Entries[e.Stream()]++
	}
	return nil
}
