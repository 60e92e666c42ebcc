package hentry

import "context"

// DefaultUserAgent identifies the loader when no user agent is configured.
const DefaultUserAgent = "Mozilla/5.0 (compatible; Hentry)"

// Fetcher retrieves the HTML body of a URL.
type Fetcher interface {
	// Fetch returns the document body. Implementations report a non-success
	// status as EREQUEST, an empty body as ENOCONTENT and transport
	// failures as EFETCH.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter rate limits requests on a per-domain basis.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed or ctx is done.
	Wait(ctx context.Context, domain string) error
}
