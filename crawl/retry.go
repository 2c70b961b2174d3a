package crawl

import (
	"context"
	"time"

	"github.com/learnsearch/librarian"
)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry fetches a URL with exponential backoff: up to 3 retries
// (4 total attempts) with delays of 1s, 2s, 4s. The logger function, if
// provided, is called on each retry.
func FetchWithRetry(ctx context.Context, fetcher librarian.Fetcher, url string, logger LogFunc) (*librarian.HtmlPage, error) {
	return FetchWithRetryDelays(ctx, fetcher, url, logger, DefaultRetryDelays())
}

// FetchWithRetryDelays is like FetchWithRetry but with configurable delays,
// which also keeps tests free of real backoff waits.
func FetchWithRetryDelays(ctx context.Context, fetcher librarian.Fetcher, url string, logger LogFunc, delays []time.Duration) (*librarian.HtmlPage, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		page, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return page, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
