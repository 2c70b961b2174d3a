package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/learnsearch/librarian"
)

// Ensure SitemapService implements librarian.SitemapService.
var _ librarian.SitemapService = (*SitemapService)(nil)

// SitemapService discovers page URLs from website sitemaps via HTTP.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs finds all URLs from a site's sitemap. Sitemap locations come
// from robots.txt directives, falling back to /sitemap.xml; sitemap indexes
// are resolved recursively. Returns an empty slice when no sitemap exists.
//
// When baseURL has a non-root path (e.g. https://example.com/tutorials/),
// only URLs under that path are returned.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *librarian.URLFilter) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, librarian.Errorf(librarian.EINVALID, "invalid base url %q: %v", baseURL, err)
	}

	pathPrefix := base.Path
	if pathPrefix == "/" {
		pathPrefix = ""
	}

	// Sitemaps live at the domain root regardless of the base path.
	root := *base
	root.Path = ""

	sitemapURLs, err := s.findSitemapURLs(ctx, &root)
	if err != nil {
		return nil, err
	}

	urls := []string{}
	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	for _, sitemapURL := range sitemapURLs {
		found, err := s.walkSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			return nil, err
		}
		for _, u := range found {
			if seenURLs[u] {
				continue
			}
			seenURLs[u] = true
			if !underPathPrefix(u, pathPrefix) || !filter.Match(u) {
				continue
			}
			urls = append(urls, u)
		}
	}

	return urls, nil
}

// findSitemapURLs reads sitemap locations from robots.txt, falling back to
// the conventional /sitemap.xml when robots.txt is absent or lists none.
func (s *SitemapService) findSitemapURLs(ctx context.Context, root *url.URL) ([]string, error) {
	var sitemaps []string

	body, err := s.get(ctx, root.String()+"/robots.txt")
	if err == nil {
		scanner := bufio.NewScanner(body)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if rest, ok := strings.CutPrefix(line, "Sitemap:"); ok {
				if u := strings.TrimSpace(rest); u != "" {
					sitemaps = append(sitemaps, u)
				}
			}
		}
		body.Close()
	}

	if len(sitemaps) > 0 {
		return sitemaps, nil
	}

	fallback := root.String() + "/sitemap.xml"
	ok, err := s.exists(ctx, fallback)
	if err != nil || !ok {
		return nil, nil
	}
	return []string{fallback}, nil
}

// walkSitemap fetches one sitemap document and returns its page URLs,
// recursing through <sitemapindex> entries. seen guards against cycles.
func (s *SitemapService) walkSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, librarian.Errorf(librarian.EINVALID, "parse sitemap %s: %v", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, nil
	}

	switch root.Tag {
	case "urlset":
		var urls []string
		for _, el := range root.SelectElements("url") {
			if loc := el.SelectElement("loc"); loc != nil {
				if u := strings.TrimSpace(loc.Text()); u != "" {
					urls = append(urls, u)
				}
			}
		}
		return urls, nil

	case "sitemapindex":
		var urls []string
		for _, el := range root.SelectElements("sitemap") {
			loc := el.SelectElement("loc")
			if loc == nil {
				continue
			}
			nested, err := s.walkSitemap(ctx, strings.TrimSpace(loc.Text()), seen)
			if err != nil {
				return nil, err
			}
			urls = append(urls, nested...)
		}
		return urls, nil
	}

	return nil, nil
}

// underPathPrefix reports whether the URL's path sits under prefix,
// respecting path segment boundaries.
func underPathPrefix(rawURL, prefix string) bool {
	if prefix == "" {
		return true
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return strings.HasPrefix(parsed.Path, prefix) || parsed.Path == strings.TrimSuffix(prefix, "/")
}

func (s *SitemapService) get(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, librarian.Errorf(librarian.EINVALID, "invalid url %q: %v", targetURL, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, librarian.Errorf(librarian.EUNAVAILABLE, "fetch %s: %v", targetURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, librarian.Errorf(librarian.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, targetURL)
	}
	return resp.Body, nil
}

func (s *SitemapService) exists(ctx context.Context, targetURL string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, targetURL, nil)
	if err != nil {
		return false, librarian.Errorf(librarian.EINVALID, "invalid url %q: %v", targetURL, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return false, nil
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}
