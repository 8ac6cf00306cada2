package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locrank"
)

// Ensure LoggingSource implements locrank.DocumentSource.
var _ locrank.DocumentSource = (*LoggingSource)(nil)

// LoggingSource wraps a DocumentSource with logging.
type LoggingSource struct {
	next   locrank.DocumentSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next locrank.DocumentSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Load delegates to the wrapped source and logs the outcome.
func (s *LoggingSource) Load(ctx context.Context, url string) (page *locrank.Page, err error) {
	defer func(begin time.Time) {
		bytes := 0
		if page != nil {
			bytes = len(page.HTML)
		}
		s.logger.Info("load",
			"url", url,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx, url)
}
