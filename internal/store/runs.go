package store

import (
	"context"
	"fmt"
	"time"

	"hpscan/internal/engine"
	"hpscan/internal/output"
)

// Scan describes one invocation whose runs are stored together.
type Scan struct {
	ID           string
	StartedAt    time.Time
	MinRunLength int
	Strict       bool
	ToolVersion  string
}

// BeginScan records the scan row that runs reference.
func (s *Store) BeginScan(ctx context.Context, sc Scan) error {
	_, err := s.db.ExecContext(ctx,
		s.rebind(`INSERT INTO scans (scan_id, started_at, min_run_length, strict, tool_version) VALUES (?, ?, ?, ?, ?)`),
		sc.ID, sc.StartedAt.UTC().Format(time.RFC3339), sc.MinRunLength, sc.Strict, sc.ToolVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to record scan %s: %w", sc.ID, err)
	}
	return nil
}

// InsertRuns stores hits for scanID in a single transaction.
func (s *Store) InsertRuns(ctx context.Context, scanID string, hits []engine.Hit) (err error) {
	if len(hits) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, s.rebind(
		`INSERT INTO homopolymer_runs (scan_id, source_file, contig, start_pos, end_pos, len, nt) VALUES (?, ?, ?, ?, ?, ?, ?)`))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, h := range hits {
		if _, err = stmt.ExecContext(ctx, scanID, h.SourceFile, h.Contig, h.Start, h.End, h.Length(), output.Symbol(h.Symbol)); err != nil {
			return fmt.Errorf("failed to insert run %s:%d-%d: %w", h.Contig, h.Start, h.End, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit runs: %w", err)
	}
	return nil
}

// CountRuns returns the number of runs stored for scanID.
func (s *Store) CountRuns(ctx context.Context, scanID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, s.rebind(`SELECT COUNT(*) FROM homopolymer_runs WHERE scan_id = ?`), scanID).Scan(&n)
	return n, err
}
