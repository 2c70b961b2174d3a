package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/learnsearch/librarian"
	librarianhttp "github.com/learnsearch/librarian/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements librarian.Fetcher at compile time.
var _ librarian.Fetcher = (*librarianhttp.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the page with body, headers and canonical URL", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello</body></html>"))
		}))
		defer srv.Close()

		fetcher := librarianhttp.NewFetcher(librarianhttp.WithClient(srv.Client()))
		defer fetcher.Close()

		page, err := fetcher.Fetch(context.Background(), srv.URL+"/page.html")

		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello</body></html>", page.HTML)
		assert.Equal(t, srv.URL+"/page.html", page.URL)
		assert.Equal(t, srv.URL+"/page.html", page.RequestURL)
		assert.Equal(t, "text/html", page.Header.Get("Content-Type"))
	})

	t.Run("records the redirect target as the canonical URL", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/old.html", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/new.html", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/new.html", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("moved"))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		fetcher := librarianhttp.NewFetcher(librarianhttp.WithClient(srv.Client()))
		defer fetcher.Close()

		page, err := fetcher.Fetch(context.Background(), srv.URL+"/old.html")

		require.NoError(t, err)
		assert.Equal(t, srv.URL+"/new.html", page.URL)
		assert.Equal(t, srv.URL+"/old.html", page.RequestURL)
	})

	t.Run("fails with EUNAVAILABLE for non-200 status codes", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		fetcher := librarianhttp.NewFetcher(librarianhttp.WithClient(srv.Client()))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, librarian.EUNAVAILABLE, librarian.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("slow"))
		}))
		defer srv.Close()

		fetcher := librarianhttp.NewFetcher()
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, srv.URL)
		require.Error(t, err)
	})

	t.Run("fails with EUNAVAILABLE for an unreachable host", func(t *testing.T) {
		t.Parallel()

		fetcher := librarianhttp.NewFetcher(librarianhttp.WithTimeout(100 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")

		require.Error(t, err)
		assert.Equal(t, librarian.EUNAVAILABLE, librarian.ErrorCode(err))
	})
}
