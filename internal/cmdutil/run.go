package cmdutil

import (
	"context"
	"log/slog"

	"hpscan/internal/engine"
	"hpscan/internal/pipeline"
)

// RunStream runs the shared pipeline, applies a visitor, and streams results via send.
// It returns the number of kept outputs, the pipeline stats and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	files []string,
	eng *engine.Engine,
	logger *slog.Logger,
	visit func(engine.Hit) (bool, T, error),
	send func(T) error,
) (int, pipeline.Stats, error) {
	total := 0
	st, err := pipeline.ForEachRun(ctx, cfg, files, eng, logger, func(h engine.Hit) error {
		keep, out, vErr := visit(h)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, st, err
}
