package hentry

import "context"

// Client extracts entries from URLs by composing a Fetcher and a Parser.
type Client struct {
	Fetcher Fetcher
	Parser  Parser
}

// ParseURL fetches url and extracts its entry.
//
// Fetch failures are returned as-is, so callers can tell a non-success
// status (EREQUEST) from an empty body (ENOCONTENT) or a transport error
// (EFETCH). A document without an entry yields nil and no error. An entry
// without an explicit id gets one derived from url with URIID.
func (c *Client) ParseURL(ctx context.Context, url string, format Format) (*Entry, error) {
	html, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if html == "" {
		return nil, Errorf(ENOCONTENT, "no content at %s", url)
	}

	entry, err := c.Parser.Parse(html, format)
	if err != nil || entry == nil {
		return nil, err
	}
	if entry.ID == "" {
		entry.ID = URIID(url)
	}
	return entry, nil
}

// ParseHTML extracts the entry from an already retrieved document.
// The id is left unset unless the document declares one.
func (c *Client) ParseHTML(html string, format Format) (*Entry, error) {
	return c.Parser.Parse(html, format)
}
