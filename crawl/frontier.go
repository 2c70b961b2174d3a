package crawl

import (
	"strings"
	"sync"

	"github.com/learnsearch/librarian"
	"github.com/learnsearch/librarian/bloom"
)

var _ librarian.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory URL queue with Bloom filter deduplication.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.URLSet
	queue []string
}

// NewFrontier creates a new Frontier sized for n expected URLs with the
// given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewURLSet(n, fpRate),
	}
}

// Push adds a URL to the frontier. Returns false if the URL has already
// been seen. Fragments are stripped before deduplication, so URLs differing
// only by fragment are duplicates.
func (f *Frontier) Push(url string) bool {
	url = stripURLFragment(url)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.Contains(url) {
		return false
	}
	f.seen.Insert(url)
	f.queue = append(f.queue, url)
	return true
}

// Pop returns the next URL in insertion order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been processed or queued.
// Fragments are stripped before checking.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Contains(stripURLFragment(url))
}

func stripURLFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
