package store

import (
	"context"
	"log/slog"

	"hpscan/internal/engine"
)

// Write consumes in, inserting hits in transactions of batchSize. On error the
// rest of in is drained so the producer never blocks.
func (s *Store) Write(ctx context.Context, scanID string, in <-chan engine.Hit, batchSize int) error {
	if batchSize < 1 {
		batchSize = 1
	}
	batch := make([]engine.Hit, 0, batchSize)
	total := 0
	flush := func() error {
		if err := s.InsertRuns(ctx, scanID, batch); err != nil {
			return err
		}
		total += len(batch)
		batch = batch[:0]
		return nil
	}
	for h := range in {
		batch = append(batch, h)
		if len(batch) < batchSize {
			continue
		}
		if err := flush(); err != nil {
			for range in {
			}
			return err
		}
	}
	if err := flush(); err != nil {
		return err
	}
	s.logger.Debug("runs stored", slog.String("scan_id", scanID), slog.Int("runs", total))
	return nil
}
