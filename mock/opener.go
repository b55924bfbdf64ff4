package mock

import (
	"context"
	"io"

	"github.com/fwojciec/wikiintro"
)

var _ wikiintro.PageOpener = (*PageOpener)(nil)

// PageOpener is a mock implementation of wikiintro.PageOpener.
type PageOpener struct {
	OpenFn func(ctx context.Context, address string) (io.ReadCloser, error)
}

func (o *PageOpener) Open(ctx context.Context, address string) (io.ReadCloser, error) {
	return o.OpenFn(ctx, address)
}

// Body is an io.ReadCloser that records whether it was closed.
type Body struct {
	io.Reader
	Closed bool
}

func (b *Body) Close() error {
	b.Closed = true
	return nil
}
