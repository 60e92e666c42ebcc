package batch

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/hentry"
	"golang.org/x/time/rate"
)

var _ hentry.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to the same host with one token
// bucket per host. Hosts are compared case-insensitively.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each host, without bursting. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &DomainLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   limit,
	}
}

// Wait blocks until a request to domain is allowed.
// Returns an error if ctx is done first.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.bucket(strings.ToLower(domain)).Wait(ctx)
}

func (d *DomainLimiter) bucket(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buckets[domain]
	if !ok {
		b = rate.NewLimiter(d.limit, 1)
		d.buckets[domain] = b
	}
	return b
}
