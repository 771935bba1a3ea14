package output

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "contig\tstart\tend\tlen\tnt"

// Symbol renders a run symbol for every sink. The byte is read as a Latin-1
// code point, so any input byte becomes valid UTF-8 and 0xff prints as U+00FF.
func Symbol(b byte) string { return string(rune(b)) }

// Output formats understood by the writers.
const (
	FormatTSV   = "tsv"
	FormatBED   = "bed"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatTable = "table"
)

// Formats lists every supported output format.
var Formats = []string{FormatTSV, FormatBED, FormatJSON, FormatJSONL, FormatTable}

// IsFormat reports whether f is a supported output format.
func IsFormat(f string) bool {
	for _, x := range Formats {
		if x == f {
			return true
		}
	}
	return false
}
