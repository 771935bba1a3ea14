// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"hpscan/internal/engine"
)

// Options carries presentation switches shared by all formats.
type Options struct {
	Header bool
}

// RunWriterFunc consumes hits until in is closed. Implementations must drain
// in on error so producers never block.
type RunWriterFunc func(w io.Writer, in <-chan engine.Hit, opt Options) error

// Writer registry (format → handler). Register in init() blocks.
var runWriters = map[string]RunWriterFunc{}

// RegisterRun installs fn for format (idempotent, last wins).
func RegisterRun(format string, fn RunWriterFunc) { runWriters[format] = fn }

// RegisteredFormats lists registered formats in sorted order.
func RegisteredFormats() []string {
	out := make([]string, 0, len(runWriters))
	for f := range runWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func lookupRun(format string) (RunWriterFunc, error) {
	fn, ok := runWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown run format %q (no writer registered)", format)
	}
	return fn, nil
}
