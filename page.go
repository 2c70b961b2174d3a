package librarian

import (
	"context"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HtmlPage is an immutable downloaded HTML page and its context on the web.
type HtmlPage struct {
	// The HTML source.
	HTML string

	// Canonical URL the page was served from, after any server-side
	// redirects.
	URL string

	// URL originally requested, which may differ from URL if the server
	// redirected.
	RequestURL string

	// HTTP response headers.
	Header http.Header
}

// Parse parses the page's HTML. Parsing is side-effect free; callers get a
// fresh document on every call and may mutate it freely.
func (p *HtmlPage) Parse() (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(p.HTML))
	if err != nil {
		return nil, Errorf(EINVALID, "cannot parse HTML for %s: %v", p.URL, err)
	}
	return doc, nil
}

// Fetcher downloads HTML pages.
type Fetcher interface {
	// Fetch downloads the page at url. A non-success HTTP status is an
	// error (EUNAVAILABLE).
	Fetch(ctx context.Context, url string) (*HtmlPage, error)
}
