package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/learnsearch/librarian"
)

var (
	_ librarian.PageReducer         = (*JupyterBookReducer)(nil)
	_ librarian.BookMetadataService = (*JupyterBookReducer)(nil)
)

// jupyterBookRootSelectors locate the content container on a JupyterBook
// page, in priority order across JupyterBook versions.
var jupyterBookRootSelectors = []string{
	"#main-content .section",
	"#main-content section",
	"main .section",
	"main section",
}

// JupyterBookReducer reduces JupyterBook pages and reads book-level
// metadata from a book's homepage.
type JupyterBookReducer struct{}

// NewJupyterBookReducer creates a new JupyterBookReducer.
func NewJupyterBookReducer() *JupyterBookReducer {
	return &JupyterBookReducer{}
}

// Name returns the reducer's identifier.
func (r *JupyterBookReducer) Name() string {
	return "jupyterbook"
}

// Reduce parses a JupyterBook content page into metadata and sections.
func (r *JupyterBookReducer) Reduce(page *librarian.HtmlPage) (*librarian.ReducedPage, error) {
	doc, err := page.Parse()
	if err != nil {
		return nil, err
	}

	root := firstSelection(doc, jupyterBookRootSelectors...)
	if root == nil {
		return nil, librarian.Errorf(librarian.EINVALID, "no main content container in %s", page.URL)
	}

	opts := &SectionOptions{
		HeaderText:  trimHeaderSuffix,
		ContentText: normalizeText,
	}

	sections, err := SphinxSections(root, page.URL, nil, opts)
	if err != nil {
		return nil, err
	}

	// The site-wide title is also an h1, so the page title comes from the
	// content container's own heading.
	title := trimHeaderSuffix(root.Find("h1").First().Text())
	seed := title
	if len(sections) > 0 {
		if h := sections[len(sections)-1].Headings; len(h) > 0 {
			seed = h[len(h)-1]
		}
	}
	siblings, err := SiblingSections(root, page.URL, []string{seed}, opts)
	if err != nil {
		return nil, err
	}
	sections = append(sections, siblings...)

	reduced := &librarian.ReducedPage{
		URL:      page.URL,
		Title:    title,
		Summary:  normalizeText(doc.Find("#main-content p").First().Text()),
		Images:   contentImages(root, page.URL),
		Sections: dropIgnoredSections(sections),
	}
	overwriteRootSummary(reduced.Sections, reduced.Summary)

	return reduced, nil
}

// Metadata reads book-level metadata from a JupyterBook homepage. Every
// accessor degrades to an empty value when its element is absent; only the
// root URL and title are required downstream (JupyterBookMetadata.Validate).
func (r *JupyterBookReducer) Metadata(homepage *librarian.HtmlPage) (*librarian.JupyterBookMetadata, error) {
	doc, err := homepage.Parse()
	if err != nil {
		return nil, err
	}

	rootURL, err := librarian.NormalizeRootURL(homepage.URL)
	if err != nil {
		return nil, err
	}

	meta := &librarian.JupyterBookMetadata{
		RootURL:          rootURL,
		Title:            strings.TrimSpace(doc.Find("#site-title").First().Text()),
		Description:      normalizeText(doc.Find("#main-content p").First().Text()),
		SourceRepository: sourceRepository(doc),
		PageURLs:         pageURLs(doc, homepage.URL),
	}

	if logo, ok := doc.Find("img.logo").First().Attr("src"); ok {
		meta.LogoURL = resolveReference(homepage.URL, logo)
	}

	return meta, nil
}

// sourceRepository finds the book's source-repository link in the
// navigation, currently recognizing GitHub URLs.
func sourceRepository(doc *goquery.Document) string {
	var repo string
	doc.Find("nav a.external").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if ok && strings.HasPrefix(href, "https://github.com") {
			repo = href
			return false
		}
		return true
	})
	return repo
}

// pageURLs collects the book's internal page links from the navigation,
// resolved against the homepage URL. Self-referential anchors are skipped.
func pageURLs(doc *goquery.Document, baseURL string) []string {
	var urls []string
	doc.Find("nav a.internal").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || href == "" || href == "#" {
			return
		}
		if resolved := resolveReference(baseURL, href); resolved != "" {
			urls = append(urls, resolved)
		}
	})
	return urls
}
