// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"hpscan/internal/engine"
	"hpscan/pkg/api"
)

// ToAPIRun converts a domain Hit to the stable wire schema (v1).
func ToAPIRun(h engine.Hit) api.RunV1 {
	return api.RunV1{
		Contig:     h.Contig,
		Start:      h.Start,
		End:        h.End,
		Length:     h.Length(),
		Symbol:     Symbol(h.Symbol),
		SourceFile: h.SourceFile,
	}
}

// StreamJSON writes a JSON array of v1 runs element by element, so the
// array is never held in memory.
func StreamJSON(w io.Writer, in <-chan engine.Hit) error {
	if _, err := io.WriteString(w, "["); err != nil {
		drain(in)
		return err
	}
	first := true
	for h := range in {
		b, err := json.Marshal(ToAPIRun(h))
		if err != nil {
			drain(in)
			return err
		}
		sep := ",\n  "
		if first {
			sep, first = "\n  ", false
		}
		if _, err := io.WriteString(w, sep); err != nil {
			drain(in)
			return err
		}
		if _, err := w.Write(b); err != nil {
			drain(in)
			return err
		}
	}
	tail := "\n]\n"
	if first {
		tail = "]\n"
	}
	_, err := io.WriteString(w, tail)
	return err
}
