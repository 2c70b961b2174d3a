// Package http provides HTTP implementations of librarian's download and
// sitemap-discovery interfaces.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/learnsearch/librarian"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements librarian.Fetcher at compile time.
var _ librarian.Fetcher = (*Fetcher)(nil)

// Fetcher downloads HTML pages over HTTP. The documentation sites it
// targets are statically generated, so no JavaScript rendering is needed.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
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

// WithClient sets the underlying HTTP client, overriding the timeout
// configuration.
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

// Fetch downloads the page at url. The returned page records the canonical
// URL the server finally responded from, which may differ from url when the
// server redirected.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*librarian.HtmlPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, librarian.Errorf(librarian.EINVALID, "invalid url %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, librarian.Errorf(librarian.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, librarian.Errorf(librarian.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, librarian.Errorf(librarian.EUNAVAILABLE, "read %s: %v", url, err)
	}

	canonical := url
	if resp.Request != nil && resp.Request.URL != nil {
		canonical = resp.Request.URL.String()
	}

	return &librarian.HtmlPage{
		HTML:       string(body),
		URL:        canonical,
		RequestURL: url,
		Header:     resp.Header,
	}, nil
}

// Close releases resources. A no-op for the HTTP fetcher.
func (f *Fetcher) Close() error {
	return nil
}
