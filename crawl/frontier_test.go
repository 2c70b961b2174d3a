package crawl_test

import (
	"sync"
	"testing"

	"github.com/learnsearch/librarian"
	"github.com/learnsearch/librarian/crawl"
	"github.com/stretchr/testify/assert"
)

// Ensure Frontier implements librarian.URLFrontier at compile time.
var _ librarian.URLFrontier = (*crawl.Frontier)(nil)

func TestFrontier(t *testing.T) {
	t.Parallel()

	t.Run("pops URLs in insertion order", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)

		assert.True(t, f.Push("https://example.com/a"))
		assert.True(t, f.Push("https://example.com/b"))
		assert.Equal(t, 2, f.Len())

		url, ok := f.Pop()
		assert.True(t, ok)
		assert.Equal(t, "https://example.com/a", url)

		url, ok = f.Pop()
		assert.True(t, ok)
		assert.Equal(t, "https://example.com/b", url)

		_, ok = f.Pop()
		assert.False(t, ok)
	})

	t.Run("rejects duplicate URLs", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)

		assert.True(t, f.Push("https://example.com/a"))
		assert.False(t, f.Push("https://example.com/a"))
		assert.Equal(t, 1, f.Len())
	})

	t.Run("URLs differing only by fragment are duplicates", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)

		assert.True(t, f.Push("https://example.com/a#intro"))
		assert.False(t, f.Push("https://example.com/a#goals"))
		assert.True(t, f.Seen("https://example.com/a"))
		assert.True(t, f.Seen("https://example.com/a#other"))

		url, ok := f.Pop()
		assert.True(t, ok)
		assert.Equal(t, "https://example.com/a", url)
	})

	t.Run("popped URLs stay seen", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)

		f.Push("https://example.com/a")
		f.Pop()

		assert.True(t, f.Seen("https://example.com/a"))
		assert.False(t, f.Push("https://example.com/a"))
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(1000, 0.01)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				urls := []string{
					"https://example.com/a",
					"https://example.com/b",
					"https://example.com/c",
				}
				f.Push(urls[n%len(urls)])
				f.Pop()
				f.Len()
			}(i)
		}
		wg.Wait()
	})
}
