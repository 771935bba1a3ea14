// Package appcore wires engine, pipeline and sinks for one scan invocation.
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"hpscan/internal/cmdutil"
	"hpscan/internal/config"
	"hpscan/internal/engine"
	"hpscan/internal/pipeline"
	"hpscan/internal/store"
	"hpscan/internal/version"
	"hpscan/internal/visitors"
	"hpscan/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2
	ExitIO          = 3
	ExitInterrupted = 130
)

const sinkBuffer = 256

// output is where the text sink writes; Finish makes the result visible.
type output interface {
	io.Writer
	Finish() error
	Abort()
}

type stdoutOutput struct{ *bufio.Writer }

func (o stdoutOutput) Finish() error { return o.Flush() }
func (o stdoutOutput) Abort()        { _ = o.Flush() }

type fileOutput struct{ *writers.AtomicFile }

func (o fileOutput) Finish() error { return o.Commit() }

func openOutput(stdout io.Writer, path string) (output, error) {
	if path == "" {
		return stdoutOutput{bufio.NewWriter(stdout)}, nil
	}
	f, err := writers.CreateAtomic(path)
	if err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", path, err)
	}
	return fileOutput{f}, nil
}

// openStore connects, migrates and records the scan row.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*store.Store, string, error) {
	st, err := store.Open(ctx, cfg.DBDriver, cfg.DBDSN, logger)
	if err != nil {
		return nil, "", err
	}
	if err := st.Migrate(); err != nil {
		_ = st.Close()
		return nil, "", err
	}
	scanID := uuid.NewString()
	if err := st.BeginScan(ctx, store.Scan{
		ID:           scanID,
		StartedAt:    time.Now(),
		MinRunLength: cfg.MinRunLength,
		Strict:       cfg.Strict,
		ToolVersion:  version.Version,
	}); err != nil {
		_ = st.Close()
		return nil, "", err
	}
	return st, scanID, nil
}

// sinkError names the sink that failed.
type sinkError struct {
	sink string
	err  error
}

func (e *sinkError) Error() string { return e.sink + ": " + e.err.Error() }
func (e *sinkError) Unwrap() error { return e.err }

// Run scans files with cfg and feeds every configured sink. Diagnostics go to
// logger; results go to stdout or cfg.Out. It returns the process exit code.
func Run(ctx context.Context, stdout io.Writer, cfg *config.Config, files []string, logger *slog.Logger) int {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	eng, err := engine.New(cfg.Scan())
	if err != nil {
		logger.Error("invalid scan configuration", slog.Any("error", err))
		return ExitUsage
	}

	out, err := openOutput(stdout, cfg.Out)
	if err != nil {
		logger.Error("cannot open output", slog.Any("error", err))
		return ExitIO
	}

	sinks := []Sink{TextSink{W: out, Format: cfg.Output, Opt: writers.Options{Header: cfg.Header}}}
	var scanID string
	if cfg.UseDB() {
		st, id, err := openStore(ctx, cfg, logger)
		if err != nil {
			out.Abort()
			logger.Error("cannot open database", slog.String("driver", cfg.DBDriver), slog.Any("error", err))
			return ExitIO
		}
		defer func() { _ = st.Close() }()
		scanID = id
		sinks = append(sinks, DBSink{Store: st, ScanID: id, BatchSize: cfg.DBBatchSize})
	}

	runs, stats, scanErr, sinkErr := fanOut(ctx, cfg, files, eng, logger, sinks)

	summary := stats.LogValue().Group()
	if scanID != "" {
		summary = append(summary, slog.String("scan_id", scanID))
	}

	switch {
	case ctx.Err() != nil:
		out.Abort()
		logger.LogAttrs(context.Background(), slog.LevelWarn, "interrupted", summary...)
		return ExitInterrupted
	case sinkErr != nil:
		out.Abort()
		logger.Error("cannot write results", slog.Any("error", sinkErr))
		return ExitIO
	case scanErr != nil:
		out.Abort()
		logger.LogAttrs(ctx, slog.LevelError, "scan incomplete", summary...)
		return ExitIO
	}

	if err := out.Finish(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		logger.Error("cannot write results", slog.Any("error", err))
		return ExitIO
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "scan complete", summary...)

	if runs == 0 {
		return cfg.NoMatchExitCode
	}
	return ExitOK
}

// fanOut runs the pipeline as the single producer and every sink as a
// consumer. A failing sink cancels the producer; file level scan failures do
// not stop the other files and come back as scanErr.
func fanOut(
	ctx context.Context,
	cfg *config.Config,
	files []string,
	eng *engine.Engine,
	logger *slog.Logger,
	sinks []Sink,
) (runs int, stats pipeline.Stats, scanErr, sinkErr error) {
	g, gctx := errgroup.WithContext(ctx)

	chans := make([]chan engine.Hit, len(sinks))
	for i, s := range sinks {
		ch := make(chan engine.Hit, sinkBuffer)
		chans[i] = ch
		g.Go(func() error {
			if err := s.Consume(gctx, ch); err != nil {
				return &sinkError{sink: s.Name(), err: err}
			}
			return nil
		})
	}

	g.Go(func() error {
		defer func() {
			for _, ch := range chans {
				close(ch)
			}
		}()
		n, st, err := cmdutil.RunStream(gctx, pipeline.Config{ReportShort: cfg.ReportShort}, files, eng, logger,
			visitors.For(cfg.FoldCase),
			func(h engine.Hit) error {
				for _, ch := range chans {
					select {
					case ch <- h:
					case <-gctx.Done():
						return gctx.Err()
					}
				}
				return nil
			},
		)
		runs, stats = n, st
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		scanErr = err
		return nil
	})

	if err := g.Wait(); err != nil {
		var se *sinkError
		if errors.As(err, &se) {
			sinkErr = se
		}
	}
	return runs, stats, scanErr, sinkErr
}
