// Package goquery provides the DOM-level implementations of librarian's page
// reducers: the two sectionizer algorithms, per-generator page reducers,
// generator detection, and client-side redirect detection.
package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/learnsearch/librarian"
)

// codeOutputSelector matches the output blocks of executed notebook cells.
// Outputs are large and low-signal, so they are stripped from indexable
// content. Covers both classic nbconvert ("cell_output") and JupyterLab
// ("jp-OutputArea") markup.
const codeOutputSelector = ".cell_output, .jp-OutputArea"

// SectionOptions customizes text post-processing during sectionizing.
type SectionOptions struct {
	// HeaderText post-processes heading text (e.g. stripping the "¶"
	// header-link suffix Sphinx appends).
	HeaderText func(string) string

	// ContentText post-processes the text of each content element before
	// it is accumulated.
	ContentText func(string) string
}

func (o *SectionOptions) headerText(s string) string {
	if o != nil && o.HeaderText != nil {
		return o.HeaderText(s)
	}
	return s
}

func (o *SectionOptions) contentText(s string) string {
	if o != nil && o.ContentText != nil {
		return o.ContentText(s)
	}
	return s
}

// SphinxSections reduces a nested Sphinx-style section container into a flat,
// depth-first list of sections. Sphinx wraps each hierarchical block of
// content in a container element (legacy "div.section" or a modern
// <section> tag) whose first child is the block's heading.
//
// headers is the heading path accumulated above root; pass nil for the
// document's first (h1) container. Nested containers are emitted before
// their ancestor's own trailing section, so the section for root itself is
// always last.
//
// The root container must carry an id attribute; a missing id is a caller
// error (EINVALID).
func SphinxSections(root *goquery.Selection, baseURL string, headers []string, opts *SectionOptions) ([]librarian.Section, error) {
	id, ok := root.Attr("id")
	if !ok {
		return nil, librarian.Errorf(librarian.EINVALID, "section container has no id attribute (base URL %s)", baseURL)
	}
	url := fmt.Sprintf("%s#%s", baseURL, id)

	current := copyHeadings(headers)
	var texts []string
	var sections []librarian.Section
	var walkErr error

	root.Children().EachWithBreak(func(_ int, el *goquery.Selection) bool {
		name := goquery.NodeName(el)
		switch {
		case headingLevel(name) > 0:
			header := opts.headerText(el.Text())
			current = append(copyHeadings(headers), header)
		case isSectionContainer(el, name):
			nested, err := SphinxSections(el, baseURL, current, opts)
			if err != nil {
				walkErr = err
				return false
			}
			sections = append(sections, nested...)
		default:
			text, ok := elementText(el, opts)
			if !ok || text == "" {
				return true
			}
			texts = append(texts, text)
		}
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sections = append(sections, librarian.Section{
		Content:  strings.Join(texts, "\n\n"),
		Headings: current,
		URL:      url,
	})
	return sections, nil
}

// SiblingSections reduces the "extra h1" containers that some documents
// place after the primary root container. These siblings are continuation
// sections rather than separate documents, so each is reduced with headers
// seeding the chain under the original document title.
func SiblingSections(root *goquery.Selection, baseURL string, headers []string, opts *SectionOptions) ([]librarian.Section, error) {
	var sections []librarian.Section
	var walkErr error

	root.NextAll().EachWithBreak(func(_ int, sib *goquery.Selection) bool {
		if !isSectionContainer(sib, goquery.NodeName(sib)) {
			return true
		}
		nested, err := SphinxSections(sib, baseURL, headers, opts)
		if err != nil {
			walkErr = err
			return false
		}
		sections = append(sections, nested...)
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return sections, nil
}

// FlatSections reduces a flat notebook-style document into sections. The
// root has no nested sectioning structure, just a linear run of prose and
// code cells, so section boundaries are heading occurrences alone.
//
// A heading closes out the current section only when the accumulator has
// both a heading path and content; the new heading path is derived with
// Section.NextSection. Content fragments are space-joined since flat
// documents interleave many small fragments per logical section. A document
// with no headings yields no sections.
func FlatSections(root *goquery.Selection, baseURL string, opts *SectionOptions) []librarian.Section {
	var sections []librarian.Section
	var current librarian.Section

	for _, el := range flatContentElements(root) {
		name := goquery.NodeName(el)
		if level := headingLevel(name); level > 0 {
			if current.HeaderLevel() > 0 && current.Content != "" {
				sections = append(sections, current)
			}
			header := opts.headerText(el.Text())
			id, _ := el.Attr("id")
			url := fmt.Sprintf("%s#%s", baseURL, id)
			current = current.NextSection(level, header, url)
			continue
		}

		text, ok := elementText(el, opts)
		if !ok || text == "" {
			continue
		}
		if current.Content == "" {
			current.Content = text
		} else {
			current.Content += " " + text
		}
	}

	if current.HeaderLevel() > 0 {
		sections = append(sections, current)
	}
	return sections
}

// flatContentElements returns the content elements of a JupyterLab-style
// notebook document in document order: the children of each markdown cell's
// rendered container (so headings appear as individual elements), and the
// input editor of each code cell. Code cells are not subdivided, and their
// output areas are never selected.
func flatContentElements(root *goquery.Selection) []*goquery.Selection {
	var elements []*goquery.Selection
	root.Find(".jp-Cell").Each(func(_ int, cell *goquery.Selection) {
		switch {
		case cell.HasClass("jp-MarkdownCell"):
			cell.Find(".jp-RenderedHTMLCommon").First().Children().Each(func(_ int, el *goquery.Selection) {
				elements = append(elements, el)
			})
		case cell.HasClass("jp-CodeCell"):
			if input := cell.Find(".jp-InputArea-editor").First(); input.Length() > 0 {
				elements = append(elements, input)
			}
		}
	})
	return elements
}

// elementText extracts plain text from a content element. The element is
// cloned first so stripping embedded code outputs never mutates the shared
// document, which sibling recursion may still traverse. The bool result is
// false when no text could be extracted.
func elementText(el *goquery.Selection, opts *SectionOptions) (string, bool) {
	if el.Length() == 0 {
		return "", false
	}
	clone := el.Clone()
	clone.Find(codeOutputSelector).Remove()
	return opts.contentText(clone.Text()), true
}

// isSectionContainer reports whether el is a Sphinx section container, in
// either the legacy wrapper-class form or the modern sectioning-tag form.
func isSectionContainer(el *goquery.Selection, name string) bool {
	if name == "section" {
		return true
	}
	return name == "div" && el.HasClass("section")
}

// headingLevel returns the numeric level of an h1-h6 tag name, or 0 for any
// other tag.
func headingLevel(name string) int {
	if len(name) == 2 && name[0] == 'h' && name[1] >= '1' && name[1] <= '6' {
		return int(name[1] - '0')
	}
	return 0
}

func copyHeadings(headings []string) []string {
	if len(headings) == 0 {
		return nil
	}
	out := make([]string, len(headings))
	copy(out, headings)
	return out
}
