package crawl_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/learnsearch/librarian"
	"github.com/learnsearch/librarian/crawl"
	"github.com/learnsearch/librarian/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	noDelays := []time.Duration{0, 0, 0}

	t.Run("returns the page on first success", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*librarian.HtmlPage, error) {
				attempts++
				return &librarian.HtmlPage{HTML: "ok", URL: url}, nil
			},
		}

		page, err := crawl.FetchWithRetryDelays(context.Background(), fetcher, "https://example.com/", nil, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "ok", page.HTML)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries transient failures and logs each retry", func(t *testing.T) {
		t.Parallel()

		var attempts, logged int
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*librarian.HtmlPage, error) {
				attempts++
				if attempts < 3 {
					return nil, fmt.Errorf("transient")
				}
				return &librarian.HtmlPage{HTML: "ok", URL: url}, nil
			},
		}
		logger := func(format string, args ...any) { logged++ }

		page, err := crawl.FetchWithRetryDelays(context.Background(), fetcher, "https://example.com/", logger, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "ok", page.HTML)
		assert.Equal(t, 3, attempts)
		assert.Equal(t, 2, logged)
	})

	t.Run("gives up after exhausting the delays", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*librarian.HtmlPage, error) {
				attempts++
				return nil, fmt.Errorf("down")
			},
		}

		_, err := crawl.FetchWithRetryDelays(context.Background(), fetcher, "https://example.com/", nil, noDelays)

		require.Error(t, err)
		assert.Equal(t, 4, attempts)
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*librarian.HtmlPage, error) {
				cancel()
				return nil, fmt.Errorf("down")
			},
		}

		_, err := crawl.FetchWithRetryDelays(ctx, fetcher, "https://example.com/", nil, []time.Duration{time.Minute})

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
