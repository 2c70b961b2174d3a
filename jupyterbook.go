package librarian

import (
	"net/url"
	"strings"
)

// JupyterBookMetadata is the per-site metadata of a JupyterBook, computed
// once from the book's homepage and shared read-only across every page-level
// reduction of the book.
type JupyterBookMetadata struct {
	// Root URL of the book, normalized so it always points at a
	// directory (ends with "/").
	RootURL string

	// Title of the book as plain text.
	Title string

	// URL of the book's logo image.
	LogoURL string

	// First content paragraph of the book, unformatted.
	Description string

	// URL of the book's source repository (e.g. a GitHub repository),
	// if one is advertised in the navigation.
	SourceRepository string

	// URLs of the book's content pages, discovered from the homepage
	// navigation.
	PageURLs []string

	// Priority for default result ordering of the book's records.
	Priority int
}

// Validate returns an error if required metadata is missing.
func (m *JupyterBookMetadata) Validate() error {
	if m.RootURL == "" {
		return Errorf(EINVALID, "jupyterbook root URL required")
	}
	if m.Title == "" {
		return Errorf(EINVALID, "jupyterbook title required")
	}
	return nil
}

// BookMetadataService reads book-level metadata from a book's homepage.
type BookMetadataService interface {
	// Metadata computes the book metadata from the downloaded homepage.
	Metadata(homepage *HtmlPage) (*JupyterBookMetadata, error)
}

// NormalizeRootURL rewrites a book URL so it points at the book's directory:
// any "*.html" path segments are dropped, the path gains a trailing slash,
// and params, query and fragment are unset.
func NormalizeRootURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", Errorf(EINVALID, "invalid root URL %q: %v", raw, err)
	}

	var parts []string
	for _, p := range strings.Split(u.Path, "/") {
		if strings.HasSuffix(p, ".html") {
			continue
		}
		parts = append(parts, p)
	}
	path := strings.Join(parts, "/")
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}

	normalized := url.URL{
		Scheme: u.Scheme,
		Host:   u.Host,
		Path:   path,
	}
	return normalized.String(), nil
}
