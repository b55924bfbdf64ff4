package mock

import (
	"io"

	"github.com/fwojciec/wikiintro"
)

var _ wikiintro.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wikiintro.Extractor.
type Extractor struct {
	ExtractFn func(r io.Reader) (string, error)
}

func (e *Extractor) Extract(r io.Reader) (string, error) {
	return e.ExtractFn(r)
}
