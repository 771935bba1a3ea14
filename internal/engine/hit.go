// internal/engine/hit.go
package engine

import "hpscan-core/homopolymer"

// Hit is a qualifying run located in a named sequence.
type Hit struct {
	SourceFile string
	Contig     string
	homopolymer.Run
}

// Length is End-Start.
func (h Hit) Length() int { return h.Len() }
