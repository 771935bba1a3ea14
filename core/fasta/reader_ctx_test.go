package fasta

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStreamPathCtx_CancelImmediately_YieldsNoRecords(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "x.fa")
	if err := os.WriteFile(fn, []byte(">s\nACGT\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n := 0
	err := StreamPathCtx(ctx, fn, func(Record) error { n++; return nil }, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 records due to immediate cancel, got %d", n)
	}
}

func TestStreamPathCtx_MissingFile(t *testing.T) {
	err := StreamPathCtx(context.Background(), filepath.Join(t.TempDir(), "nope.fa"), func(Record) error { return nil }, nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want not-exist error, got %v", err)
	}
}
