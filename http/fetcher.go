// Package http provides an HTTP-based implementation of locrank.Fetcher.
package http

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/locrank"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is sent unless overridden. Some sites serve a stripped
// page or block requests without a browser-like User-Agent.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// MaxBodySize caps how much of a response body is read.
const MaxBodySize = 10 << 20

// Ensure Fetcher implements locrank.Fetcher at compile time.
var _ locrank.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// It does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	chromeTLS bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithChromeTLS makes HTTPS connections present a Chrome TLS fingerprint.
func WithChromeTLS() Option {
	return func(f *Fetcher) {
		f.chromeTLS = true
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}
	if f.chromeTLS {
		f.client.Transport = newChromeTransport()
	}

	return f
}

// Fetch retrieves the HTML content from the given URL, decoded to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", locrank.Errorf(locrank.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isMarkup(contentType) {
		return "", locrank.Errorf(locrank.EINVALID, "unsupported content type %q for %s", contentType, url)
	}

	r, err := charset.NewReader(io.LimitReader(resp.Body, MaxBodySize), contentType)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", url, err)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// isMarkup reports whether the content type is HTML or XML.
// A missing content type is accepted.
func isMarkup(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" ||
		mediaType == "application/xhtml+xml" ||
		mediaType == "text/xml" ||
		mediaType == "application/xml" ||
		strings.HasSuffix(mediaType, "+xml")
}
