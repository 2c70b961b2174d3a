package mock

import (
	"github.com/learnsearch/librarian"
)

var (
	_ librarian.PageReducer         = (*PageReducer)(nil)
	_ librarian.ReducerRegistry     = (*ReducerRegistry)(nil)
	_ librarian.GeneratorDetector   = (*GeneratorDetector)(nil)
	_ librarian.RedirectDetector    = (*RedirectDetector)(nil)
	_ librarian.BookMetadataService = (*BookMetadataService)(nil)
)

// PageReducer is a mock implementation of librarian.PageReducer.
type PageReducer struct {
	ReduceFn func(page *librarian.HtmlPage) (*librarian.ReducedPage, error)
	NameFn   func() string
}

func (r *PageReducer) Reduce(page *librarian.HtmlPage) (*librarian.ReducedPage, error) {
	return r.ReduceFn(page)
}

func (r *PageReducer) Name() string {
	if r.NameFn == nil {
		return "mock"
	}
	return r.NameFn()
}

// ReducerRegistry is a mock implementation of librarian.ReducerRegistry.
type ReducerRegistry struct {
	GetFn        func(generator librarian.Generator) librarian.PageReducer
	GetForHTMLFn func(html string) librarian.PageReducer
	RegisterFn   func(generator librarian.Generator, reducer librarian.PageReducer)
	ListFn       func() []librarian.Generator
}

func (r *ReducerRegistry) Get(generator librarian.Generator) librarian.PageReducer {
	return r.GetFn(generator)
}

func (r *ReducerRegistry) GetForHTML(html string) librarian.PageReducer {
	return r.GetForHTMLFn(html)
}

func (r *ReducerRegistry) Register(generator librarian.Generator, reducer librarian.PageReducer) {
	r.RegisterFn(generator, reducer)
}

func (r *ReducerRegistry) List() []librarian.Generator {
	return r.ListFn()
}

// GeneratorDetector is a mock implementation of librarian.GeneratorDetector.
type GeneratorDetector struct {
	DetectFn func(html string) librarian.Generator
}

func (d *GeneratorDetector) Detect(html string) librarian.Generator {
	return d.DetectFn(html)
}

// RedirectDetector is a mock implementation of librarian.RedirectDetector.
type RedirectDetector struct {
	DetectRedirectFn func(html, sourceURL string) (string, error)
}

func (d *RedirectDetector) DetectRedirect(html, sourceURL string) (string, error) {
	return d.DetectRedirectFn(html, sourceURL)
}

// BookMetadataService is a mock implementation of
// librarian.BookMetadataService.
type BookMetadataService struct {
	MetadataFn func(homepage *librarian.HtmlPage) (*librarian.JupyterBookMetadata, error)
}

func (s *BookMetadataService) Metadata(homepage *librarian.HtmlPage) (*librarian.JupyterBookMetadata, error) {
	return s.MetadataFn(homepage)
}
