// core/fasta/reader.go
package fasta

import (
	"errors"
	"fmt"
)

// Record is one FASTA entry with its framing removed.
type Record struct {
	ID  string
	Seq []byte
}

var (
	// ErrNoHeader marks sequence data seen before any '>' header.
	ErrNoHeader = errors.New("sequence data before first header")
	// ErrEmptyID marks a '>' header without an identifier.
	ErrEmptyID = errors.New("header has no identifier")
)

// RecordError describes a malformed record that was skipped.
type RecordError struct {
	Line int // 1-based line where the problem was detected
	Err  error
}

func (e *RecordError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e *RecordError) Unwrap() error { return e.Err }
