package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wikiintro"
)

// Ensure LoggingExtractor implements wikiintro.Extractor.
var _ wikiintro.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   wikiintro.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next wikiintro.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the size of the result.
func (e *LoggingExtractor) Extract(r io.Reader) (text string, err error) {
	cr := &countingReader{r: r}
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"read", cr.n,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(cr)
}

// countingReader counts the bytes read through it.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
