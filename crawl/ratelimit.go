package crawl

import (
	"context"
	"sync"

	"github.com/learnsearch/librarian"
	"golang.org/x/time/rate"
)

var _ librarian.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out page downloads per domain using token buckets.
// Downloads to different domains proceed independently; within one domain
// requests are separated by at least 1/rps seconds, with no burst.
type DomainLimiter struct {
	rps float64

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewDomainLimiter creates a limiter allowing rps requests per second to
// each domain.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		rps:     rps,
		buckets: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until the domain's bucket permits a request, or until ctx is
// canceled.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.bucket(domain).Wait(ctx)
}

func (d *DomainLimiter) bucket(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.buckets[domain]
	if !ok {
		b = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.buckets[domain] = b
	}
	return b
}
