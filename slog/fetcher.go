// Package slog provides logging decorators for wikiintro services
// built on log/slog.
package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wikiintro"
)

// Ensure LoggingFetcher implements wikiintro.PageOpener.
var _ wikiintro.PageOpener = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a PageOpener with logging of each request.
type LoggingFetcher struct {
	next   wikiintro.PageOpener
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next wikiintro.PageOpener, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Open delegates to the wrapped opener and logs the outcome.
func (f *LoggingFetcher) Open(ctx context.Context, address string) (body io.ReadCloser, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", address,
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "code", wikiintro.ErrorCode(err), "err", err)
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Open(ctx, address)
}
