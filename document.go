package locrank

import "context"

// Document is a parsed page that can be queried for elements.
type Document interface {
	// Elements returns all elements matching the tag type, in document order.
	// The tag type is usually a bare tag name ("input") but any selector the
	// implementation understands is accepted.
	// Returns EINVALID if the tag type cannot be interpreted.
	Elements(tagType string) ([]Element, error)
}

// Parser parses raw markup into a queryable Document.
type Parser interface {
	Parse(html string) (Document, error)
}

// Page is a fetched and parsed web page.
type Page struct {
	URL      string
	HTML     string
	Document Document
}

// DocumentSource retrieves and parses pages.
// Implementations hide fetching, retries and parsing.
type DocumentSource interface {
	Load(ctx context.Context, url string) (*Page, error)
}
