// internal/writers/run.go
package writers

import (
	"encoding/json"
	"io"

	"hpscan/internal/engine"
	"hpscan/internal/jsonlutil"
	"hpscan/internal/output"
)

func init() {
	RegisterRun(output.FormatTSV, func(w io.Writer, in <-chan engine.Hit, opt Options) error {
		return output.StreamTSV(w, in, opt.Header)
	})
	RegisterRun(output.FormatBED, func(w io.Writer, in <-chan engine.Hit, _ Options) error {
		return output.StreamBED(w, in)
	})
	RegisterRun(output.FormatJSON, func(w io.Writer, in <-chan engine.Hit, _ Options) error {
		return output.StreamJSON(w, in)
	})
	RegisterRun(output.FormatJSONL, func(w io.Writer, in <-chan engine.Hit, _ Options) error {
		return jsonlutil.Write[engine.Hit](w, in,
			func(enc *json.Encoder, h engine.Hit) error { return enc.Encode(output.ToAPIRun(h)) },
			IsBrokenPipe,
		)
	})
	RegisterRun(output.FormatTable, writeTable)
}

// WriteRuns consumes in with the writer registered for format. Broken pipes
// are reported as success.
func WriteRuns(w io.Writer, format string, in <-chan engine.Hit, opt Options) error {
	fn, err := lookupRun(format)
	if err != nil {
		for range in {
		}
		return err
	}
	return quietPipe(fn(w, in, opt))
}

// StartRunWriter spins up a writer goroutine for hits.
func StartRunWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- engine.Hit, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Hit, bufSize)
	errCh := make(chan error, 1)
	go func() { errCh <- WriteRuns(out, format, in, opt) }()
	return in, errCh
}
