package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/learnsearch/librarian"
)

var _ librarian.RedirectDetector = (*Redirects)(nil)

// refreshContentPattern matches the content attribute of a meta refresh
// tag, e.g. "0; url=notebooks/FITS-images.html".
var refreshContentPattern = regexp.MustCompile(`^\s*\d+\s*;\s*url=(.+)$`)

// Redirects detects client-side meta-refresh redirects.
type Redirects struct{}

// NewRedirects creates a new Redirects detector.
func NewRedirects() *Redirects {
	return &Redirects{}
}

// DetectRedirect returns the absolute redirect target of a page that
// carries a <meta http-equiv="refresh"> tag, or "" when the page is not a
// redirect. A refresh tag whose content attribute cannot be parsed fails
// with EINVALID.
func (r *Redirects) DetectRedirect(html, sourceURL string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", librarian.Errorf(librarian.EINVALID, "parse html: %v", err)
	}

	meta := doc.Find(`meta[http-equiv="refresh"]`).First()
	if meta.Length() == 0 {
		return "", nil
	}

	content, _ := meta.Attr("content")
	m := refreshContentPattern.FindStringSubmatch(content)
	if m == nil {
		return "", librarian.Errorf(librarian.EINVALID, "malformed refresh content %q in %s", content, sourceURL)
	}

	base, err := url.Parse(sourceURL)
	if err != nil {
		return "", librarian.Errorf(librarian.EINVALID, "invalid source url %q: %v", sourceURL, err)
	}
	target, err := url.Parse(strings.TrimSpace(m[1]))
	if err != nil {
		return "", librarian.Errorf(librarian.EINVALID, "invalid redirect target %q in %s", m[1], sourceURL)
	}

	return base.ResolveReference(target).String(), nil
}
