// internal/engine/engine.go
package engine

import (
	"iter"

	"hpscan-core/fasta"
	"hpscan-core/homopolymer"
)

// Engine scans records with a fixed configuration. It holds no state between
// records, so one Engine can be shared freely.
type Engine struct {
	cfg homopolymer.Config
}

// New validates cfg and returns an Engine.
func New(cfg homopolymer.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Short reports whether rec cannot contain a qualifying run.
func (e *Engine) Short(rec fasta.Record) bool { return len(rec.Seq) < e.cfg.MinRunLength }

// ScanRecord lazily yields the hits in rec, tagged with its id and source file.
func (e *Engine) ScanRecord(sourceFile string, rec fasta.Record) iter.Seq[Hit] {
	return func(yield func(Hit) bool) {
		for r := range homopolymer.Scan(rec.Seq, e.cfg) {
			if !yield(Hit{SourceFile: sourceFile, Contig: rec.ID, Run: r}) {
				return
			}
		}
	}
}
