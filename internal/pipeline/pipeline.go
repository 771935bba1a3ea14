// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"hpscan-core/fasta"
	"hpscan/internal/engine"
)

// Config controls the scanning pipeline.
type Config struct {
	ReportShort bool // log sequences shorter than the minimum run length at warn
}

// Stats summarises one pipeline pass.
type Stats struct {
	Files       int
	FailedFiles int
	Records     int
	Malformed   int
	Short       int
	Bases       int64
	Runs        int
}

// LogValue renders Stats as a slog group.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("files", s.Files),
		slog.Int("failed_files", s.FailedFiles),
		slog.Int("records", s.Records),
		slog.Int("malformed", s.Malformed),
		slog.Int("short", s.Short),
		slog.Int64("bases", s.Bases),
		slog.Int("runs", s.Runs),
	)
}

// errStop carries a visit error out of the FASTA stream untouched.
type errStop struct{ err error }

func (e errStop) Error() string { return e.err.Error() }
func (e errStop) Unwrap() error { return e.err }

// ForEachRun scans every record of every file with eng and calls visit for each
// hit. A visit error or ctx cancellation stops the pass and is returned. File
// level failures (bad extension, open or read errors) are logged, the next file
// is scanned, and the first such failure is returned at the end.
func ForEachRun(
	ctx context.Context,
	cfg Config,
	files []string,
	eng *engine.Engine,
	logger *slog.Logger,
	visit func(engine.Hit) error,
) (Stats, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var (
		st       Stats
		firstErr error
	)

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		st.Files++
		log := logger.With(slog.String("file", path))

		err := fasta.StreamPathCtx(ctx, path,
			func(rec fasta.Record) error {
				st.Records++
				st.Bases += int64(len(rec.Seq))
				if eng.Short(rec) {
					st.Short++
					lvl := slog.LevelDebug
					if cfg.ReportShort {
						lvl = slog.LevelWarn
					}
					log.Log(ctx, lvl, "skipping short sequence",
						slog.String("record", rec.ID), slog.Int("length", len(rec.Seq)))
					return nil
				}
				n := 0
				for h := range eng.ScanRecord(path, rec) {
					if err := visit(h); err != nil {
						return errStop{err}
					}
					n++
				}
				st.Runs += n
				log.Debug("record scanned", slog.String("record", rec.ID),
					slog.Int("length", len(rec.Seq)), slog.Int("runs", n))
				return nil
			},
			func(e *fasta.RecordError) {
				st.Malformed++
				log.Warn("skipping malformed record", slog.Int("line", e.Line), slog.Any("error", e.Err))
			},
		)

		var stop errStop
		switch {
		case err == nil:
		case errors.As(err, &stop):
			return st, stop.err
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return st, err
		default:
			st.FailedFiles++
			log.Error("cannot scan file", slog.Any("error", err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return st, firstErr
}
