// Package http provides an HTTP-based implementation of wikiintro.PageOpener.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/wikiintro"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// It covers connecting as well as reading the body.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements wikiintro.PageOpener at compile time.
var _ wikiintro.PageOpener = (*Fetcher)(nil)

// Fetcher opens article markup using plain HTTP GET requests.
// No custom headers are sent and redirects follow net/http defaults.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient sets the underlying HTTP client. The client's own timeout is
// kept; WithTimeout has no effect when this option is used.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Open issues a GET for address and returns the body decoded to UTF-8.
//
// A request that never produced a response is reported as EUNAVAILABLE.
// A response with a non-2xx status is reported as ENOTFOUND.
func (f *Fetcher) Open(ctx context.Context, address string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)
	if err != nil {
		return nil, wikiintro.Errorf(wikiintro.EINVALID, "%v", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, wikiintro.Errorf(wikiintro.EUNAVAILABLE, "%v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, wikiintro.Errorf(wikiintro.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, address)
	}

	// charset.NewReader sniffs the first KiB, so read failures can surface here.
	var r io.Reader = resp.Body
	if decoded, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type")); err == nil {
		r = decoded
	} else if !errors.Is(err, io.EOF) {
		resp.Body.Close()
		return nil, err
	}

	return &body{Reader: r, Closer: resp.Body}, nil
}

// body reads decoded content and closes the underlying response body.
type body struct {
	io.Reader
	io.Closer
}
