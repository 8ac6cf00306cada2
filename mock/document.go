package mock

import (
	"context"

	"github.com/fwojciec/locrank"
)

// Compile-time interface verification.
var (
	_ locrank.Document       = (*Document)(nil)
	_ locrank.Parser         = (*Parser)(nil)
	_ locrank.DocumentSource = (*DocumentSource)(nil)
)

// Document is a mock implementation of locrank.Document.
type Document struct {
	ElementsFn func(tagType string) ([]locrank.Element, error)
}

func (d *Document) Elements(tagType string) ([]locrank.Element, error) {
	return d.ElementsFn(tagType)
}

// Parser is a mock implementation of locrank.Parser.
type Parser struct {
	ParseFn func(html string) (locrank.Document, error)
}

func (p *Parser) Parse(html string) (locrank.Document, error) {
	return p.ParseFn(html)
}

// DocumentSource is a mock implementation of locrank.DocumentSource.
type DocumentSource struct {
	LoadFn func(ctx context.Context, url string) (*locrank.Page, error)
}

func (s *DocumentSource) Load(ctx context.Context, url string) (*locrank.Page, error) {
	return s.LoadFn(ctx, url)
}
