// core/fasta/open.go
package fasta

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrBadExtension is returned for paths without a FASTA suffix.
	ErrBadExtension = errors.New("file must have a .fasta, .fna or .fa extension")
	// ErrCompressed is returned for gzip inputs, which are not supported.
	ErrCompressed = errors.New("compressed input is not supported")
)

// CheckExtension accepts .fasta, .fna and .fa (any case). "-" (stdin) always passes.
func CheckExtension(path string) error {
	if path == "-" {
		return nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".fasta", ".fna", ".fa":
		return nil
	case ".gz", ".bgz", ".gzip":
		return fmt.Errorf("%s: %w", path, ErrCompressed)
	default:
		return fmt.Errorf("%s: %w", path, ErrBadExtension)
	}
}

// openReader opens path after the extension check; "-" is stdin.
func openReader(path string) (io.ReadCloser, error) {
	if err := CheckExtension(path); err != nil {
		return nil, err
	}
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	// reject gzip content hiding behind a plain suffix
	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if n == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		_ = fh.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrCompressed)
	}
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	return fh, nil
}

// StreamPathCtx opens path and streams its records; see StreamCtx.
// Open and extension errors are returned before any record is emitted.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error, report func(*RecordError)) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, emit, report)
}
