// Package goquery implements hentry.Parser on top of
// github.com/PuerkitoBio/goquery CSS selector matching.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/hentry"
	"github.com/fwojciec/hentry/dateparse"
	"golang.org/x/net/html"
)

// Ensure Parser implements hentry.Parser at compile time.
var _ hentry.Parser = (*Parser)(nil)

// Parser extracts hentry entries with fixed selector fallback lists.
// Parser is safe for concurrent use by multiple goroutines.
type Parser struct {
	converter hentry.Converter
}

// Option configures a Parser.
type Option func(*Parser)

// WithConverter sets the converter used for hentry.FormatMarkdown.
// Without one, markdown requests fail with EINVALID.
func WithConverter(c hentry.Converter) Option {
	return func(p *Parser) {
		p.converter = c
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts the entry from raw HTML.
//
// The document must contain exactly one entry root (.hentry, or .entry
// when there is no .hentry) and the root must yield a title; otherwise
// Parse returns nil and no error. Unknown formats render as text.
func (p *Parser) Parse(s string, format hentry.Format) (*hentry.Entry, error) {
	node, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return nil, hentry.WrapError(hentry.EINTERNAL, err, "failed to parse HTML")
	}
	doc := goquery.NewDocumentFromNode(node)

	roots := entrySelectors.find(doc.Selection)
	if roots == nil || roots.Length() != 1 {
		return nil, nil
	}

	entry, err := p.parseEntry(roots, format)
	if err != nil || entry == nil {
		return nil, err
	}

	if id, ok := idSelectors.attr(doc.Selection, "content"); ok && id != "" {
		entry.ID = id
	}
	if image, ok := imageSelectors.attr(doc.Selection, "content"); ok && image != "" {
		entry.Image = image
	}
	return entry, nil
}

func (p *Parser) parseEntry(root *goquery.Selection, format hentry.Format) (*hentry.Entry, error) {
	title := titleSelectors.text(root)
	if title == "" {
		return nil, nil
	}
	entry := &hentry.Entry{Title: title}

	content, err := p.content(root, format)
	if err != nil {
		return nil, err
	}
	entry.Content = content

	entry.Author = authorSelectors.text(root)

	if v, ok := dateSelectors.attr(root, "datetime"); ok {
		if t, ok := dateparse.ToDatetime(v); ok {
			entry.Pubdate = &t
		}
	}

	entry.Tags = tagSelectors.texts(root)
	entry.Categories = categorySelectors.texts(root)
	return entry, nil
}

func (p *Parser) content(root *goquery.Selection, format hentry.Format) (string, error) {
	switch format {
	case hentry.FormatHTML, hentry.FormatMarkdown:
	default:
		return contentSelectors.text(root), nil
	}

	sel := contentSelectors.find(root)
	if sel == nil {
		return "", nil
	}
	markup, err := goquery.OuterHtml(sel.First())
	if err != nil {
		return "", hentry.WrapError(hentry.EINTERNAL, err, "failed to render content")
	}
	if format == hentry.FormatHTML {
		return markup, nil
	}

	if p.converter == nil {
		return "", hentry.Errorf(hentry.EINVALID, "markdown format requires a converter")
	}
	md, err := p.converter.Convert(markup)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}
