package goquery

import (
	"github.com/learnsearch/librarian"
)

var _ librarian.PageReducer = (*NbcollectionReducer)(nil)

// NbcollectionReducer reduces nbcollection-generated tutorial pages. These
// pages have no nested sectioning markup, only a flat run of JupyterLab
// prose and code cells, so sections are delimited purely by headings.
type NbcollectionReducer struct{}

// NewNbcollectionReducer creates a new NbcollectionReducer.
func NewNbcollectionReducer() *NbcollectionReducer {
	return &NbcollectionReducer{}
}

// Name returns the reducer's identifier.
func (r *NbcollectionReducer) Name() string {
	return "nbcollection"
}

// Reduce parses the notebook page into metadata and sections.
func (r *NbcollectionReducer) Reduce(page *librarian.HtmlPage) (*librarian.ReducedPage, error) {
	doc, err := page.Parse()
	if err != nil {
		return nil, err
	}

	root := doc.Find(".jp-Notebook").First()
	if root.Length() == 0 {
		return nil, librarian.Errorf(librarian.EINVALID, "no notebook container in %s", page.URL)
	}

	opts := &SectionOptions{
		HeaderText:  trimHeaderSuffix,
		ContentText: normalizeSpace,
	}

	reduced := &librarian.ReducedPage{
		URL:      page.URL,
		Title:    pageTitle(doc),
		Authors:  parseCommaList(labeledParagraph(doc, "authors")),
		Keywords: parseCommaList(labeledParagraph(doc, "keywords")),
		Summary:  normalizeSpace(labeledParagraph(doc, "summary")),
		Images:   contentImages(root, page.URL),
		Sections: dropIgnoredSections(FlatSections(root, page.URL, opts)),
	}
	overwriteRootSummary(reduced.Sections, reduced.Summary)

	return reduced, nil
}
