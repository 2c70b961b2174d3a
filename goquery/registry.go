package goquery

import (
	"sort"
	"sync"

	"github.com/learnsearch/librarian"
)

var _ librarian.ReducerRegistry = (*Registry)(nil)

// Registry maps generators to their page reducers.
type Registry struct {
	mu       sync.RWMutex
	reducers map[librarian.Generator]librarian.PageReducer
	detector librarian.GeneratorDetector
	fallback librarian.PageReducer
}

// NewRegistry creates a registry pre-populated with the built-in reducers.
// The sphinx reducer doubles as the fallback for unrecognized pages.
func NewRegistry() *Registry {
	sphinx := NewSphinxReducer()
	r := &Registry{
		reducers: make(map[librarian.Generator]librarian.PageReducer),
		detector: NewDetector(),
		fallback: sphinx,
	}
	r.Register(librarian.GeneratorSphinx, sphinx)
	r.Register(librarian.GeneratorNbcollection, NewNbcollectionReducer())
	r.Register(librarian.GeneratorJupyterBook, NewJupyterBookReducer())
	return r
}

// Get returns the reducer registered for a generator, or nil.
func (r *Registry) Get(generator librarian.Generator) librarian.PageReducer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.reducers[generator]
}

// GetForHTML detects the page's generator and returns the matching
// reducer, falling back to the default when detection fails.
func (r *Registry) GetForHTML(html string) librarian.PageReducer {
	generator := r.detector.Detect(html)
	if reducer := r.Get(generator); reducer != nil {
		return reducer
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fallback
}

// Register adds a reducer for a generator, replacing any existing one.
func (r *Registry) Register(generator librarian.Generator, reducer librarian.PageReducer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reducers[generator] = reducer
}

// List returns the registered generators in stable order.
func (r *Registry) List() []librarian.Generator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	generators := make([]librarian.Generator, 0, len(r.reducers))
	for g := range r.reducers {
		generators = append(generators, g)
	}
	sort.Slice(generators, func(i, j int) bool { return generators[i] < generators[j] })
	return generators
}
