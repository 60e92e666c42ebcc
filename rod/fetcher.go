// Package rod provides a hentry.Fetcher that renders pages in headless
// Chrome via github.com/go-rod/rod, for entries built by JavaScript.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/hentry"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds navigation, load and serialization of a page.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements hentry.Fetcher at compile time.
var _ hentry.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// The browser does not expose response status codes through navigation,
// so failures are reported as EFETCH rather than EREQUEST.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the browser user agent. An empty value keeps
// hentry.DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: hentry.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", hentry.WrapError(hentry.EFETCH, err, "request to %s failed", url)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", hentry.WrapError(hentry.EFETCH, err, "opening page for %s failed", url)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
		return "", hentry.WrapError(hentry.EFETCH, err, "setting user agent failed")
	}
	if err := page.Navigate(url); err != nil {
		return "", hentry.WrapError(hentry.EFETCH, err, "request to %s failed", url)
	}
	if err := page.WaitLoad(); err != nil {
		return "", hentry.WrapError(hentry.EFETCH, err, "loading %s failed", url)
	}

	html, err := page.HTML()
	if err != nil {
		return "", hentry.WrapError(hentry.EFETCH, err, "reading %s failed", url)
	}
	if html == "" {
		return "", hentry.Errorf(hentry.ENOCONTENT, "no content at %s", url)
	}
	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	err := f.browser.Close()
	f.launcher.Kill()
	return err
}
