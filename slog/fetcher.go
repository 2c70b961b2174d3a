// Package slog provides logging decorators for librarian's services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/learnsearch/librarian"
)

// Ensure LoggingFetcher implements librarian.Fetcher.
var _ librarian.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging.
type LoggingFetcher struct {
	next   librarian.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next librarian.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher, logging the URL, size and
// duration of each download.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (*librarian.HtmlPage, error) {
	begin := time.Now()
	page, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}
	f.logger.Info("fetch",
		"url", url,
		"bytes", len(page.HTML),
		"duration", time.Since(begin),
	)
	return page, nil
}
