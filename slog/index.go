package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/learnsearch/librarian"
)

// Ensure LoggingIndexService implements librarian.IndexService.
var _ librarian.IndexService = (*LoggingIndexService)(nil)

// LoggingIndexService wraps an IndexService with operation logging.
type LoggingIndexService struct {
	next   librarian.IndexService
	logger *slog.Logger
}

// NewLoggingIndexService creates a new LoggingIndexService.
func NewLoggingIndexService(next librarian.IndexService, logger *slog.Logger) *LoggingIndexService {
	return &LoggingIndexService{next: next, logger: logger}
}

// SaveRecords delegates to the wrapped service, logging the batch size.
func (s *LoggingIndexService) SaveRecords(ctx context.Context, records []*librarian.Record) error {
	begin := time.Now()
	err := s.next.SaveRecords(ctx, records)
	if err != nil {
		s.logger.Error("save records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
		return err
	}
	s.logger.Info("save records",
		"count", len(records),
		"duration", time.Since(begin),
	)
	return nil
}

// FindRecords delegates to the wrapped service.
func (s *LoggingIndexService) FindRecords(ctx context.Context, filter librarian.RecordFilter) ([]*librarian.Record, error) {
	return s.next.FindRecords(ctx, filter)
}

// DeleteByRootURL delegates to the wrapped service, logging how many
// records were removed.
func (s *LoggingIndexService) DeleteByRootURL(ctx context.Context, rootURL string) ([]string, error) {
	deleted, err := s.next.DeleteByRootURL(ctx, rootURL)
	if err != nil {
		s.logger.Error("delete by root url", "rootUrl", rootURL, "err", err)
		return nil, err
	}
	s.logger.Info("delete by root url", "rootUrl", rootURL, "deleted", len(deleted))
	return deleted, nil
}

// ExpireRecords delegates to the wrapped service, logging how many stale
// records were removed.
func (s *LoggingIndexService) ExpireRecords(ctx context.Context, rootURL, epoch string) ([]string, error) {
	expired, err := s.next.ExpireRecords(ctx, rootURL, epoch)
	if err != nil {
		s.logger.Error("expire records", "rootUrl", rootURL, "epoch", epoch, "err", err)
		return nil, err
	}
	s.logger.Info("expire records", "rootUrl", rootURL, "epoch", epoch, "expired", len(expired))
	return expired, nil
}
