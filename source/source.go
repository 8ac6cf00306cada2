// Package source loads web pages into queryable documents.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/locrank"
)

// Ensure Source implements locrank.DocumentSource at compile time.
var _ locrank.DocumentSource = (*Source)(nil)

// Source implements locrank.DocumentSource by fetching a page and parsing
// the result. Fetches are attempted once unless retry delays are set.
type Source struct {
	fetcher     locrank.Fetcher
	parser      locrank.Parser
	retryDelays []time.Duration
	logger      *slog.Logger
}

// Option configures a Source.
type Option func(*Source)

// WithRetryDelays sets the delays between fetch attempts.
// Each delay adds one retry.
func WithRetryDelays(delays []time.Duration) Option {
	return func(s *Source) {
		s.retryDelays = delays
	}
}

// WithLogger sets the logger used to report retries.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		s.logger = logger
	}
}

// NewSource creates a new Source with the given dependencies.
func NewSource(fetcher locrank.Fetcher, parser locrank.Parser, opts ...Option) *Source {
	s := &Source{
		fetcher: fetcher,
		parser:  parser,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches and parses the page at url.
func (s *Source) Load(ctx context.Context, url string) (*locrank.Page, error) {
	if url == "" {
		return nil, locrank.Errorf(locrank.EINVALID, "URL required")
	}

	html, err := FetchWithRetryDelays(ctx, url, s.fetcher.Fetch, s.logger, s.retryDelays)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	doc, err := s.parser.Parse(html)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}

	return &locrank.Page{URL: url, HTML: html, Document: doc}, nil
}
