// pkg/api/runs_v1.go
package api

// RunV1 is the stable JSON/JSONL schema for one homopolymer run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RunV1 struct {
	Contig     string `json:"contig"`
	Start      int    `json:"start"` // 0-based, inclusive
	End        int    `json:"end"`   // exclusive
	Length     int    `json:"len"`
	Symbol     string `json:"nt"`
	SourceFile string `json:"source_file,omitempty"`
}
