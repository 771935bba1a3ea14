package config

// Defaults. The minimum run length of 5 is a practical floor for genomic
// data, not a correctness requirement; any value >= 1 is accepted.
const (
	DefaultMinRunLength = 5
	DefaultOutput       = "tsv"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DefaultDBBatchSize  = 500

	EnvPrefix = "HPSCAN_"
)

// ConfigFileNames are searched in the working directory when --config is not given.
var ConfigFileNames = []string{"hpscan.yaml", "hpscan.yml"}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"min_run_length":     DefaultMinRunLength,
		"strict":             false,
		"output":             DefaultOutput,
		"header":             true,
		"fold_case":          false,
		"out":                "",
		"log_level":          DefaultLogLevel,
		"log_format":         DefaultLogFormat,
		"quiet":              false,
		"report_short":       false,
		"no_match_exit_code": 0,
		"db_driver":          "",
		"db_dsn":             "",
		"db_batch_size":      DefaultDBBatchSize,
	}
}
