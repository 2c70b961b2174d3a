package librarian

// Generator identifies the site generator that produced a page.
type Generator string

// Supported site generators.
const (
	GeneratorUnknown      Generator = ""
	GeneratorSphinx       Generator = "sphinx"
	GeneratorNbcollection Generator = "nbcollection"
	GeneratorJupyterBook  Generator = "jupyterbook"
)

// ReducedPage is the outcome of reducing one content page: its metadata plus
// the ordered list of content sections.
type ReducedPage struct {
	// Canonical URL of the page.
	URL string

	// The page title (h1).
	Title string

	// Author names parsed from the page's "Authors" block, if any.
	Authors []string

	// Raw keyword labels parsed from the page's "Keywords" block, if any.
	Keywords []string

	// Summary paragraph of the page. The top-level section's content is
	// set to this value, since the root container's own text is usually
	// boilerplate.
	Summary string

	// Absolute URLs of content images. Inline data: URIs are excluded.
	Images []string

	// Ordered content sections. Sections whose heading path contains a
	// metadata-only label ("Authors", "Keywords", "Summary") are removed.
	Sections []Section
}

// Thumbnail returns the page's first image URL, or "" if the page has no
// usable images.
func (p *ReducedPage) Thumbnail() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// PageReducer reduces a downloaded page into sections and metadata.
type PageReducer interface {
	// Reduce parses the page and produces its reduction. A page whose
	// expected root content container is missing or malformed fails with
	// EINVALID.
	Reduce(page *HtmlPage) (*ReducedPage, error)

	// Name returns the reducer's identifier (e.g., "sphinx").
	Name() string
}

// GeneratorDetector identifies site generators from HTML.
type GeneratorDetector interface {
	// Detect analyzes HTML and returns the identified generator.
	// Returns GeneratorUnknown if the generator cannot be determined.
	Detect(html string) Generator
}

// ReducerRegistry manages generator-specific page reducers.
type ReducerRegistry interface {
	// Get returns the reducer for a specific generator.
	// Returns nil if no reducer is registered for the generator.
	Get(generator Generator) PageReducer

	// GetForHTML detects the generator from HTML and returns the
	// appropriate reducer. Falls back to a default reducer if the
	// generator is unknown.
	GetForHTML(html string) PageReducer

	// Register adds a reducer for a generator.
	Register(generator Generator, reducer PageReducer)

	// List returns all registered generators.
	List() []Generator
}

// RedirectDetector finds client-side redirects in homepage HTML.
type RedirectDetector interface {
	// DetectRedirect returns the absolute target URL of an immediate
	// <meta http-equiv="refresh"> redirect, resolved against sourceURL.
	// Returns "" with a nil error when the page is not a redirect.
	// A refresh marker whose content cannot be parsed fails with EINVALID.
	DetectRedirect(html, sourceURL string) (string, error)
}
