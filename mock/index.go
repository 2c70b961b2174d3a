package mock

import (
	"context"

	"github.com/learnsearch/librarian"
)

var _ librarian.IndexService = (*IndexService)(nil)

// IndexService is a mock implementation of librarian.IndexService.
type IndexService struct {
	SaveRecordsFn     func(ctx context.Context, records []*librarian.Record) error
	FindRecordsFn     func(ctx context.Context, filter librarian.RecordFilter) ([]*librarian.Record, error)
	DeleteByRootURLFn func(ctx context.Context, rootURL string) ([]string, error)
	ExpireRecordsFn   func(ctx context.Context, rootURL, epoch string) ([]string, error)
}

func (s *IndexService) SaveRecords(ctx context.Context, records []*librarian.Record) error {
	return s.SaveRecordsFn(ctx, records)
}

func (s *IndexService) FindRecords(ctx context.Context, filter librarian.RecordFilter) ([]*librarian.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *IndexService) DeleteByRootURL(ctx context.Context, rootURL string) ([]string, error) {
	return s.DeleteByRootURLFn(ctx, rootURL)
}

func (s *IndexService) ExpireRecords(ctx context.Context, rootURL, epoch string) ([]string, error) {
	return s.ExpireRecordsFn(ctx, rootURL, epoch)
}
