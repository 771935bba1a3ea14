// Package config loads hpscan settings from defaults, a YAML file, HPSCAN_*
// environment variables and command-line flags, in increasing priority.
package config

import "hpscan-core/homopolymer"

// Config is the effective configuration of one invocation.
type Config struct {
	MinRunLength int  `koanf:"min_run_length"`
	Strict       bool `koanf:"strict"`

	Output   string `koanf:"output"` // tsv | bed | json | jsonl | table
	Header   bool   `koanf:"header"`
	FoldCase bool   `koanf:"fold_case"` // report soft-masked symbols in upper case
	Out      string `koanf:"out"`       // output file; empty = stdout

	LogLevel    string `koanf:"log_level"`
	LogFormat   string `koanf:"log_format"`
	Quiet       bool   `koanf:"quiet"`
	ReportShort bool   `koanf:"report_short"`

	NoMatchExitCode int `koanf:"no_match_exit_code"`

	DBDriver    string `koanf:"db_driver"`
	DBDSN       string `koanf:"db_dsn"`
	DBBatchSize int    `koanf:"db_batch_size"`
}

// Scan returns the scanner configuration.
func (c *Config) Scan() homopolymer.Config {
	return homopolymer.Config{MinRunLength: c.MinRunLength, Strict: c.Strict}
}

// UseDB reports whether the SQL sink is enabled.
func (c *Config) UseDB() bool { return c.DBDriver != "" }
