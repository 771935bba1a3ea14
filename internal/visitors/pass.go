package visitors

import "hpscan/internal/engine"

// PassThrough returns the hit unchanged.
type PassThrough struct{}

func (PassThrough) Visit(h engine.Hit) (keep bool, out engine.Hit, err error) {
	return true, h, nil
}
