// Package homopolymer finds maximal runs of a repeated symbol in a sequence.
//
// The scan partitions a sequence into maximal same-symbol runs with a
// two-cursor sweep and reports the runs that pass a length filter and, in
// strict mode, a canonical-nucleotide filter. Results are produced lazily so
// chromosome-scale sequences never have their runs buffered.
package homopolymer

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidMinRunLength is returned when MinRunLength < 1.
var ErrInvalidMinRunLength = errors.New("min run length must be >= 1")

// Config holds scan parameters.
type Config struct {
	MinRunLength int
	Strict       bool // only report runs of A/C/G/T (either case)
}

// Validate rejects configurations that would report a degenerate run per position.
func (c Config) Validate() error {
	if c.MinRunLength < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidMinRunLength, c.MinRunLength)
	}
	return nil
}

// Run is a half-open interval [Start, End) of identical symbols.
type Run struct {
	Start  int
	End    int
	Symbol byte
}

// Len returns End-Start.
func (r Run) Len() int { return r.End - r.Start }

var canonical [256]bool

func init() {
	for _, b := range []byte("ACGTacgt") {
		canonical[b] = true
	}
}

// IsCanonical reports whether b is an unmasked (ACGT) or soft-masked (acgt) base.
func IsCanonical(b byte) bool { return canonical[b] }

// Valid reports whether r passes the length and (strict) symbol filters.
func Valid(r Run, cfg Config) bool {
	if r.Len() < cfg.MinRunLength {
		return false
	}
	return !cfg.Strict || canonical[r.Symbol]
}

// Partition yields every maximal run of seq in order, without filtering.
func Partition(seq []byte) iter.Seq[Run] {
	return func(yield func(Run) bool) {
		sweep(seq, 1, yield)
	}
}

// Scan yields the runs of seq that satisfy cfg. An invalid cfg yields nothing.
func Scan(seq []byte, cfg Config) iter.Seq[Run] {
	return func(yield func(Run) bool) {
		if cfg.Validate() != nil || len(seq) < cfg.MinRunLength {
			return
		}
		sweep(seq, cfg.MinRunLength, func(r Run) bool {
			if !Valid(r, cfg) {
				return true
			}
			return yield(r)
		})
	}
}

// ScanFunc calls emit for every run Scan would yield. It returns the config
// error, or the first non-nil error from emit, which also stops the scan.
func ScanFunc(seq []byte, cfg Config, emit func(Run) error) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	for r := range Scan(seq, cfg) {
		if err := emit(r); err != nil {
			return err
		}
	}
	return nil
}

// sweep walks maximal runs and yields those at least minLen long.
// Returning false from yield stops the walk.
func sweep(seq []byte, minLen int, yield func(Run) bool) {
	n := len(seq)
	for i := 0; i < n; {
		j := i + 1
		for j < n && seq[j] == seq[i] {
			j++
		}
		if j-i >= minLen && !yield(Run{Start: i, End: j, Symbol: seq[i]}) {
			return
		}
		// no later run can reach minLen
		if n-j < minLen {
			return
		}
		i = j
	}
}
