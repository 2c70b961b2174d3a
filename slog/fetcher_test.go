package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/learnsearch/librarian"
	librarianslog "github.com/learnsearch/librarian/slog"
	"github.com/learnsearch/librarian/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*librarian.HtmlPage, error) {
				return &librarian.HtmlPage{HTML: "<html>content</html>", URL: url}, nil
			},
		}

		fetcher := librarianslog.NewLoggingFetcher(inner, logger)
		page, err := fetcher.Fetch(context.Background(), "https://example.com/t.html")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", page.HTML)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com/t.html")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*librarian.HtmlPage, error) {
				return nil, errors.New("network error")
			},
		}

		fetcher := librarianslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/t.html")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})
}
