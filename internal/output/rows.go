// internal/output/rows.go
package output

import (
	"fmt"
	"io"

	"hpscan/internal/engine"
)

// FormatRowTSV returns the 5 TSV columns (no trailing newline).
func FormatRowTSV(h engine.Hit) string {
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%s", h.Contig, h.Start, h.End, h.Length(), Symbol(h.Symbol))
}

// FormatRowBED returns a BED3+name line; coordinates are already 0-based half-open.
func FormatRowBED(h engine.Hit) string {
	return fmt.Sprintf("%s\t%d\t%d\t%s:%d", h.Contig, h.Start, h.End, Symbol(h.Symbol), h.Length())
}

// StreamTSV writes the optional header and then one row per hit as it arrives.
func StreamTSV(w io.Writer, in <-chan engine.Hit, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			drain(in)
			return err
		}
	}
	return streamRows(w, in, FormatRowTSV)
}

// StreamBED writes one BED line per hit as it arrives.
func StreamBED(w io.Writer, in <-chan engine.Hit) error {
	return streamRows(w, in, FormatRowBED)
}

func streamRows(w io.Writer, in <-chan engine.Hit, row func(engine.Hit) string) error {
	for h := range in {
		if _, err := fmt.Fprintln(w, row(h)); err != nil {
			drain(in)
			return err
		}
	}
	return nil
}

// drain consumes the rest of in so producers never block on a dead writer.
func drain[T any](in <-chan T) {
	for range in {
	}
}
