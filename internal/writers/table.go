// internal/writers/table.go
package writers

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"hpscan/internal/engine"
	"hpscan/internal/output"
)

// writeTable renders hits as a box-drawn table. Column widths depend on every
// row, so this is the one format that buffers.
func writeTable(w io.Writer, in <-chan engine.Hit, opt Options) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if opt.Header {
		t.AppendHeader(table.Row{"contig", "start", "end", "len", "nt"})
	}

	n := 0
	for h := range in {
		t.AppendRow(table.Row{h.Contig, h.Start, h.End, h.Length(), output.Symbol(h.Symbol)})
		n++
	}
	if n == 0 {
		_, err := fmt.Fprintln(w, "(0 runs)")
		return err
	}
	t.Render()
	_, err := fmt.Fprintf(w, "(%d runs)\n", n)
	return err
}
