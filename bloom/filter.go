// Package bloom wraps a Bloom filter as a probabilistic URL set for
// frontier deduplication.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// URLSet is a probabilistic set of URLs. Membership tests may report false
// positives at the configured rate, never false negatives, so a crawl may
// rarely skip a URL but never visits one twice.
type URLSet struct {
	filter *bloom.BloomFilter
}

// NewURLSet creates a URL set sized for n expected URLs with the given
// false positive rate.
func NewURLSet(n uint, fpRate float64) *URLSet {
	return &URLSet{
		filter: bloom.NewWithEstimates(n, fpRate),
	}
}

// Insert adds a URL to the set. Inserting a URL twice is a no-op.
func (s *URLSet) Insert(url string) {
	s.filter.AddString(url)
}

// Contains reports whether url is in the set, with the configured false
// positive rate.
func (s *URLSet) Contains(url string) bool {
	return s.filter.TestString(url)
}

// Size returns the approximate number of URLs in the set.
func (s *URLSet) Size() uint {
	return uint(s.filter.ApproximatedSize())
}
