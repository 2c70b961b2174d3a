package librarian

import (
	"encoding/base64"
	"encoding/hex"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ContentType tags the kind of content a record was produced from.
type ContentType string

// Indexable content types.
const (
	ContentTypeTutorial      ContentType = "tutorial"
	ContentTypeGuide         ContentType = "guide"
	ContentTypeExample       ContentType = "example"
	ContentTypeDocumentation ContentType = "documentation"
)

// Record is one search-index record, built from a single Section combined
// with its page's metadata. Records are flat and JSON-serializable.
type Record struct {
	// Deterministic identifier derived from the lowercased section URL
	// and the heading path, so re-indexing identical content always maps
	// to the same record.
	ObjectID string `json:"objectID"`

	// Identifier of the indexing run that produced the record. Records
	// from earlier epochs of the same root URL are expired after a
	// successful run.
	IndexEpoch string `json:"indexEpoch"`

	ContentType ContentType `json:"contentType"`

	// Most specific URL for the record, usually an anchor link.
	URL string `json:"url"`

	// Page URL with fragment, query and params stripped.
	BaseURL string `json:"baseUrl"`

	// URL of the document project's root page. Same as BaseURL for
	// single-page sites.
	RootURL string `json:"rootUrl"`

	// Title of the documentation project. Same as H1 for single-page
	// sites.
	RootTitle string `json:"rootTitle"`

	H1 string `json:"h1"`
	H2 string `json:"h2,omitempty"`
	H3 string `json:"h3,omitempty"`
	H4 string `json:"h4,omitempty"`
	H5 string `json:"h5,omitempty"`
	H6 string `json:"h6,omitempty"`

	// Importance corresponds to the hierarchical level of the section;
	// lower numbers are more important.
	Importance int `json:"importance"`

	// Priority for default result ordering; higher numbers appear first.
	Priority int `json:"priority"`

	// Plain-text content of the section.
	Content string `json:"content"`

	// Hash of Content, for change detection between epochs.
	ContentHash string `json:"contentHash"`

	DateIndexed time.Time `json:"dateIndexed"`

	// URL of an image to use as a thumbnail, if the page has one.
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`

	// Canonicalized keywords by group name.
	Keywords map[string][]string `json:"keywords,omitempty"`
}

// RecordMeta holds the page- and run-level fields shared by every record of
// one reduction.
type RecordMeta struct {
	ContentType  ContentType
	RootURL      string
	RootTitle    string
	IndexEpoch   string
	Priority     int
	ThumbnailURL string
	Keywords     map[string][]string
}

// NewSectionRecord builds the index record for one section.
func NewSectionRecord(section Section, meta RecordMeta) *Record {
	rec := &Record{
		ObjectID:     BuildObjectID(section.URL, section.Headings),
		IndexEpoch:   meta.IndexEpoch,
		ContentType:  meta.ContentType,
		URL:          section.URL,
		BaseURL:      stripFragment(section.URL),
		RootURL:      meta.RootURL,
		RootTitle:    meta.RootTitle,
		Importance:   section.HeaderLevel(),
		Priority:     meta.Priority,
		Content:      section.Content,
		ContentHash:  HashContent(section.Content),
		DateIndexed:  time.Now().UTC(),
		ThumbnailURL: meta.ThumbnailURL,
		Keywords:     meta.Keywords,
	}

	headings := [6]*string{&rec.H1, &rec.H2, &rec.H3, &rec.H4, &rec.H5, &rec.H6}
	for i, h := range section.Headings {
		if i >= len(headings) {
			break
		}
		*headings[i] = h
	}

	return rec
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.ObjectID == "" {
		return Errorf(EINVALID, "record object ID required")
	}
	if r.IndexEpoch == "" {
		return Errorf(EINVALID, "record index epoch required")
	}
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	if r.RootURL == "" {
		return Errorf(EINVALID, "record root URL required")
	}
	if r.H1 == "" {
		return Errorf(EINVALID, "record h1 required")
	}
	if r.Importance < 1 || r.Importance > 6 {
		return Errorf(EINVALID, "record importance must be between 1 and 6, got %d", r.Importance)
	}
	return nil
}

// Headings reconstructs the record's heading path from its h1-h6 fields.
func (r *Record) Headings() []string {
	var out []string
	for _, h := range []string{r.H1, r.H2, r.H3, r.H4, r.H5, r.H6} {
		if h == "" {
			break
		}
		out = append(out, h)
	}
	return out
}

// BuildObjectID derives the deterministic record identifier from a section
// URL and heading path. The URL is lowercased so that casing differences in
// anchors do not produce duplicate records.
func BuildObjectID(sectionURL string, headings []string) string {
	urlPart := base64.StdEncoding.EncodeToString([]byte(strings.ToLower(sectionURL)))
	headingPart := base64.StdEncoding.EncodeToString([]byte(strings.Join(headings, " ")))
	return urlPart + "-" + headingPart
}

// HashContent computes the xxHash of content as a hex string.
func HashContent(content string) string {
	sum := xxhash.Sum64String(content)
	buf := make([]byte, 8)
	for i := 0; i < 8; i++ {
		buf[i] = byte(sum >> (56 - 8*i))
	}
	return hex.EncodeToString(buf)
}

// stripFragment removes the fragment, query and params from a URL.
func stripFragment(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.Fragment = ""
	u.RawQuery = ""
	return u.String()
}
