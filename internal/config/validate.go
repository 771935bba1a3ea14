package config

import (
	"errors"
	"fmt"

	"hpscan/internal/output"
	"hpscan/internal/store"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

var (
	logLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	logFormats = map[string]bool{"text": true, "json": true, "logfmt": true}
)

func invalid(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, a...))
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.MinRunLength < 1 {
		return invalid("min_run_length must be >= 1 (got %d)", c.MinRunLength)
	}
	if !output.IsFormat(c.Output) {
		return invalid("unknown output %q (want one of %v)", c.Output, output.Formats)
	}
	if !logLevels[c.LogLevel] {
		return invalid("unknown log_level %q", c.LogLevel)
	}
	if !logFormats[c.LogFormat] {
		return invalid("unknown log_format %q", c.LogFormat)
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return invalid("no_match_exit_code must be between 0 and 255")
	}
	if c.DBDriver != "" {
		if !store.IsDriver(c.DBDriver) {
			return invalid("unknown db_driver %q (want sqlite or pgx)", c.DBDriver)
		}
		if c.DBDSN == "" {
			return invalid("db_driver %q requires db_dsn", c.DBDriver)
		}
	} else if c.DBDSN != "" {
		return invalid("db_dsn given without db_driver")
	}
	if c.DBBatchSize < 1 {
		return invalid("db_batch_size must be >= 1")
	}
	return nil
}
