package librarian

import "strings"

// Section is one chunk of page content together with its heading trail.
//
// Headings is the full heading path from the document root down to this
// section; the last element is the section's own heading. Content holds only
// the text that belongs to this section, excluding nested subsections.
type Section struct {
	// Plain-text content of the section.
	Content string `json:"content"`

	// Heading hierarchy, ordered from the document root. The heading of
	// the present section is the last element.
	Headings []string `json:"headings"`

	// Anchor URL of the section, typically "{pageURL}#{id}".
	URL string `json:"url"`
}

// HeaderLevel returns the heading level of the section. A level of 1
// corresponds to an "h1" (document root) section.
func (s Section) HeaderLevel() int {
	return len(s.Headings)
}

// NextSection derives an empty sibling or child section from a newly
// encountered heading. Heading levels are treated like directory depth
// rather than a strict tree: a deeper level appends to the current path,
// while a shallower or equal level truncates the path to level-1 elements
// before appending. Real documents nest headings inconsistently and this
// rule lets the path self-correct.
func (s Section) NextSection(level int, header, url string) Section {
	var headings []string
	if level > s.HeaderLevel() {
		headings = append(headings, s.Headings...)
	} else {
		headings = append(headings, s.Headings[:level-1]...)
	}
	headings = append(headings, header)
	return Section{Headings: headings, URL: url}
}

// ContainsHeading reports whether any heading in the section's path matches
// label, ignoring case. Used to drop metadata-only sections (e.g. "Authors")
// whose content is captured as page metadata instead.
func (s Section) ContainsHeading(label string) bool {
	for _, h := range s.Headings {
		if strings.EqualFold(h, label) {
			return true
		}
	}
	return false
}
