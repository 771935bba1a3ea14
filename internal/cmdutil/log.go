// internal/cmdutil/log.go
package cmdutil

import (
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// LogOptions selects level and format of the process logger.
type LogOptions struct {
	Level  string // debug | info | warn | error
	Format string // text | json | logfmt
	Quiet  bool   // only errors
}

// NewLogger builds the stderr logger once per process. Diagnostics never go to
// stdout, which carries results.
func NewLogger(w io.Writer, o LogOptions) *slog.Logger {
	lvl, err := charmlog.ParseLevel(strings.ToLower(o.Level))
	if err != nil {
		lvl = charmlog.InfoLevel
	}
	if o.Quiet {
		lvl = charmlog.ErrorLevel
	}
	h := charmlog.NewWithOptions(w, charmlog.Options{
		Level:     lvl,
		Prefix:    "hpscan",
		Formatter: formatter(o.Format),
	})
	return slog.New(h)
}

func formatter(name string) charmlog.Formatter {
	switch strings.ToLower(name) {
	case "json":
		return charmlog.JSONFormatter
	case "logfmt":
		return charmlog.LogfmtFormatter
	default:
		return charmlog.TextFormatter
	}
}
