package mock

import (
	"context"

	"github.com/learnsearch/librarian"
)

var _ librarian.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of librarian.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *librarian.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *librarian.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
