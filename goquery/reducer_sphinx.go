package goquery

import (
	"strings"

	"github.com/learnsearch/librarian"
)

var _ librarian.PageReducer = (*SphinxReducer)(nil)

// sphinxRootSelectors locate the h1-level content container on a
// Sphinx-generated tutorial page, in priority order. Older Sphinx output
// wraps sections in "div.section" inside the page card; newer versions emit
// <section> tags.
var sphinxRootSelectors = []string{
	".card .section",
	".card section",
	"div.section",
	"section",
}

// SphinxReducer reduces notebook-converted, Sphinx-generated tutorial pages.
type SphinxReducer struct{}

// NewSphinxReducer creates a new SphinxReducer.
func NewSphinxReducer() *SphinxReducer {
	return &SphinxReducer{}
}

// Name returns the reducer's identifier.
func (r *SphinxReducer) Name() string {
	return "sphinx"
}

// Reduce parses the tutorial page into metadata and sections. Sections come
// from the nested-container sectionizer; documents that place extra h1
// containers after the primary one get those reduced as continuation
// sections chained under the document title.
func (r *SphinxReducer) Reduce(page *librarian.HtmlPage) (*librarian.ReducedPage, error) {
	doc, err := page.Parse()
	if err != nil {
		return nil, err
	}

	root := firstSelection(doc, sphinxRootSelectors...)
	if root == nil {
		return nil, librarian.Errorf(librarian.EINVALID, "no root content container in %s", page.URL)
	}

	opts := &SectionOptions{
		HeaderText:  trimHeaderSuffix,
		ContentText: strings.TrimSpace,
	}

	sections, err := SphinxSections(root, page.URL, nil, opts)
	if err != nil {
		return nil, err
	}

	// The primary container's own section is last; its final heading is
	// the document title and seeds any sibling h1 containers.
	seed := pageTitle(doc)
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
		Title:    pageTitle(doc),
		Authors:  parseCommaList(labeledParagraph(doc, "authors")),
		Keywords: parseCommaList(labeledParagraph(doc, "keywords")),
		Summary:  normalizeSpace(labeledParagraph(doc, "summary")),
		Images:   contentImages(doc.Selection, page.URL),
		Sections: dropIgnoredSections(sections),
	}
	overwriteRootSummary(reduced.Sections, reduced.Summary)

	return reduced, nil
}
