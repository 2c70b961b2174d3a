package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/learnsearch/librarian"
)

var _ librarian.GeneratorDetector = (*Detector)(nil)

// Detector inspects page markup to classify the site generator that
// produced it.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect classifies a page by its generator. JupyterBook markers are
// checked before the notebook markers because JupyterBook pages can embed
// rendered notebook cells.
func (d *Detector) Detect(html string) librarian.Generator {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return librarian.GeneratorUnknown
	}

	if doc.Find("#site-title").Length() > 0 && doc.Find("#main-content").Length() > 0 {
		return librarian.GeneratorJupyterBook
	}

	if doc.Find(".jp-Notebook").Length() > 0 {
		return librarian.GeneratorNbcollection
	}

	if generator, ok := doc.Find(`meta[name="generator"]`).First().Attr("content"); ok {
		if strings.HasPrefix(strings.ToLower(generator), "sphinx") {
			return librarian.GeneratorSphinx
		}
	}
	if doc.Find("div.section, div.body section").Length() > 0 {
		return librarian.GeneratorSphinx
	}

	return librarian.GeneratorUnknown
}
