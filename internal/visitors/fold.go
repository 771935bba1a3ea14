package visitors

import "hpscan/internal/engine"

// FoldCase reports soft-masked (lowercase) symbols in upper case. Coordinates
// are untouched; only the nt column changes.
type FoldCase struct{}

func (FoldCase) Visit(h engine.Hit) (keep bool, out engine.Hit, err error) {
	if h.Symbol >= 'a' && h.Symbol <= 'z' {
		h.Symbol -= 'a' - 'A'
	}
	return true, h, nil
}

// For returns the visitor for the fold-case setting.
func For(foldCase bool) func(engine.Hit) (bool, engine.Hit, error) {
	if foldCase {
		return FoldCase{}.Visit
	}
	return PassThrough{}.Visit
}
