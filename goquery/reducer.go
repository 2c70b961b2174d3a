package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/learnsearch/librarian"
)

// ignoredHeadings are heading labels whose sections carry page metadata
// (already captured on ReducedPage) rather than indexable content.
var ignoredHeadings = []string{"authors", "keywords", "summary"}

// trimHeaderSuffix removes the permalink suffix that Sphinx and JupyterBook
// append to heading text.
func trimHeaderSuffix(s string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), "¶#"))
}

// normalizeSpace collapses all runs of whitespace to single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normalizeText flattens content text: literal "\n" escape sequences,
// newlines and stray backslashes all become spaces.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, `\n`, " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, `\`, " ")
	return strings.TrimSpace(s)
}

// firstSelection returns the first non-empty match among the given CSS
// selectors, tried in priority order. Returns nil when nothing matches.
// The fallback list tolerates markup differences between generator versions.
func firstSelection(doc *goquery.Document, selectors ...string) *goquery.Selection {
	for _, sel := range selectors {
		if m := doc.Find(sel).First(); m.Length() > 0 {
			return m
		}
	}
	return nil
}

// pageTitle extracts the page's h1 text.
func pageTitle(doc *goquery.Document) string {
	return trimHeaderSuffix(doc.Find("h1").First().Text())
}

// labeledParagraph finds the first paragraph belonging to the section whose
// heading matches label (case-insensitive), e.g. the paragraph under an
// "Authors" heading. Returns "" when the page has no such section.
func labeledParagraph(doc *goquery.Document, label string) string {
	var text string
	doc.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if !strings.EqualFold(trimHeaderSuffix(h.Text()), label) {
			return true
		}
		if p := h.NextAllFiltered("p").First(); p.Length() > 0 {
			text = p.Text()
			return false
		}
		// Notebook-converted pages sometimes put the heading and its
		// paragraph in separate cells.
		if cell := h.Closest(".jp-Cell"); cell.Length() > 0 {
			if p := cell.NextAll().Find("p").First(); p.Length() > 0 {
				text = p.Text()
				return false
			}
		}
		return true
	})
	return text
}

// parseCommaList splits a comma-separated listing of names or labels,
// tolerating an "and" before the final item and a trailing period.
func parseCommaList(s string) []string {
	s = strings.TrimSuffix(strings.TrimSpace(s), ".")
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		part = strings.TrimSpace(strings.TrimPrefix(part, "and "))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// contentImages collects the absolute URLs of content images within scope.
// Inline data: URIs (embedded images) are excluded since they cannot serve
// as thumbnails.
func contentImages(scope *goquery.Selection, pageURL string) []string {
	var images []string
	scope.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok || src == "" {
			return
		}
		if strings.HasPrefix(strings.ToLower(src), "data:") {
			return
		}
		if resolved := resolveReference(pageURL, src); resolved != "" {
			images = append(images, resolved)
		}
	})
	return images
}

// dropIgnoredSections removes sections whose heading path contains a
// metadata-only label, matched case-insensitively.
func dropIgnoredSections(sections []librarian.Section) []librarian.Section {
	out := sections[:0]
	for _, s := range sections {
		ignored := false
		for _, label := range ignoredHeadings {
			if s.ContainsHeading(label) {
				ignored = true
				break
			}
		}
		if !ignored {
			out = append(out, s)
		}
	}
	return out
}

// overwriteRootSummary replaces the content of the top-level (h1) section
// with the page summary. The root container's own text is boilerplate left
// over between the last subsection and the end of the container.
func overwriteRootSummary(sections []librarian.Section, summary string) {
	for i := range sections {
		if sections[i].HeaderLevel() == 1 {
			sections[i].Content = summary
		}
	}
}

// resolveReference resolves href against base, returning "" when either
// cannot be parsed.
func resolveReference(base, href string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return baseURL.ResolveReference(ref).String()
}
