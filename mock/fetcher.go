package mock

import (
	"context"

	"github.com/learnsearch/librarian"
)

var _ librarian.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of librarian.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*librarian.HtmlPage, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*librarian.HtmlPage, error) {
	return f.FetchFn(ctx, url)
}
