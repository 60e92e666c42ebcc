// Package batch extracts entries from many URLs concurrently.
package batch

import (
	"context"
	"net/url"

	"github.com/fwojciec/hentry"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Runner.Concurrency is not positive.
const DefaultConcurrency = 4

// Result is the outcome of parsing one URL. Entry is nil with a nil Err
// when the page has no entry.
type Result struct {
	URL   string
	Entry *hentry.Entry
	Err   error
}

// Runner parses a list of URLs with bounded concurrency. Each URL gets a
// single attempt; a failure is recorded in its Result and does not stop
// the others.
type Runner struct {
	Fetcher     hentry.Fetcher
	Parser      hentry.Parser
	RateLimiter hentry.DomainLimiter
	Concurrency int

	// OnResult, if set, is called as each URL completes. It may be called
	// from multiple goroutines.
	OnResult func(Result)
}

// Run parses every URL and returns results in input order.
func (r *Runner) Run(ctx context.Context, urls []string, format hentry.Format) []Result {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	client := &hentry.Client{Fetcher: r.Fetcher, Parser: r.Parser}

	results := make([]Result, len(urls))
	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, u := range urls {
		g.Go(func() error {
			res := Result{URL: u}
			res.Entry, res.Err = r.parse(ctx, client, u, format)
			results[i] = res
			if r.OnResult != nil {
				r.OnResult(res)
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (r *Runner) parse(ctx context.Context, client *hentry.Client, rawURL string, format hentry.Format) (*hentry.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if r.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, hentry.WrapError(hentry.EINVALID, err, "invalid URL %q", rawURL)
		}
		if err := r.RateLimiter.Wait(ctx, u.Hostname()); err != nil {
			return nil, err
		}
	}

	return client.ParseURL(ctx, rawURL, format)
}
