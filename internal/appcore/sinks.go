package appcore

import (
	"context"
	"io"

	"hpscan/internal/engine"
	"hpscan/internal/store"
	"hpscan/internal/writers"
)

// Sink consumes hits until in is closed. Implementations drain in on error so
// the producer never blocks.
type Sink interface {
	Name() string
	Consume(ctx context.Context, in <-chan engine.Hit) error
}

// TextSink renders hits in one of the registered output formats.
type TextSink struct {
	W      io.Writer
	Format string
	Opt    writers.Options
}

func (s TextSink) Name() string { return "output" }

func (s TextSink) Consume(_ context.Context, in <-chan engine.Hit) error {
	return writers.WriteRuns(s.W, s.Format, in, s.Opt)
}

// DBSink stores hits for one scan in batched transactions.
type DBSink struct {
	Store     *store.Store
	ScanID    string
	BatchSize int
}

func (s DBSink) Name() string { return "database" }

func (s DBSink) Consume(ctx context.Context, in <-chan engine.Hit) error {
	return s.Store.Write(ctx, s.ScanID, in, s.BatchSize)
}
