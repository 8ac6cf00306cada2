// Package goquery implements locrank document parsing with goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/locrank"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var (
	_ locrank.Parser   = (*Parser)(nil)
	_ locrank.Document = (*Document)(nil)
)

// Parser parses HTML into goquery-backed documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses raw HTML. The HTML5 parsing algorithm recovers from
// malformed markup, so only reader failures are reported.
func (p *Parser) Parse(s string) (locrank.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return nil, locrank.Errorf(locrank.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Document is a parsed HTML page.
type Document struct {
	doc *goquery.Document
}

// NewDocument wraps an existing goquery document.
func NewDocument(doc *goquery.Document) *Document {
	return &Document{doc: doc}
}

// Elements returns the elements matching tagType in document order.
// The tag type is compiled as a CSS selector, so "input" and
// "input[type=submit]" are both accepted.
func (d *Document) Elements(tagType string) ([]locrank.Element, error) {
	if strings.TrimSpace(tagType) == "" {
		return nil, locrank.Errorf(locrank.EINVALID, "tag type required")
	}

	matcher, err := cascadia.Compile(tagType)
	if err != nil {
		return nil, locrank.Errorf(locrank.EINVALID, "invalid tag type %q: %v", tagType, err)
	}

	sel := d.doc.FindMatcher(matcher)
	elements := make([]locrank.Element, 0, sel.Length())
	for _, n := range sel.Nodes {
		elements = append(elements, toElement(n))
	}
	return elements, nil
}

// toElement copies a node's tag and attributes in declaration order.
// A repeated attribute keeps its first value.
func toElement(n *html.Node) locrank.Element {
	el := locrank.Element{
		Tag:        n.Data,
		Attributes: make([]locrank.Attribute, 0, len(n.Attr)),
	}
	seen := make(map[string]bool, len(n.Attr))
	for _, a := range n.Attr {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		el.Attributes = append(el.Attributes, locrank.Attribute{Key: key, Val: a.Val})
	}
	return el
}
