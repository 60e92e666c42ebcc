// Package http provides an HTTP-based implementation of hentry.Fetcher.
package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/hentry"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 5 * time.Second

// Ensure Fetcher implements hentry.Fetcher at compile time.
var _ hentry.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML documents with a single GET request.
// It never retries.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (5s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header. An empty value keeps
// hentry.DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithTransport sets the round tripper used by the underlying client.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.client.Transport = rt
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{},
		timeout:   DefaultFetchTimeout,
		userAgent: hentry.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.client.Timeout = f.timeout
	return f
}

// Fetch retrieves the document at url and decodes it to UTF-8 using the
// response Content-Type and any meta charset declaration.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", hentry.WrapError(hentry.EINVALID, err, "invalid URL %q", url)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", hentry.WrapError(hentry.EFETCH, err, "request to %s failed", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", hentry.Errorf(hentry.EREQUEST, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", hentry.WrapError(hentry.EFETCH, err, "reading body of %s failed", url)
	}
	if len(body) == 0 {
		return "", hentry.Errorf(hentry.ENOCONTENT, "no content at %s", url)
	}

	r, err := charset.NewReader(bytes.NewReader(body), resp.Header.Get("Content-Type"))
	if err != nil {
		return string(body), nil
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return string(body), nil
	}
	return string(decoded), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
