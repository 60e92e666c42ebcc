package mock

import "github.com/fwojciec/hentry"

var _ hentry.Parser = (*Parser)(nil)

// Parser is a mock implementation of hentry.Parser.
type Parser struct {
	ParseFn func(html string, format hentry.Format) (*hentry.Entry, error)
}

func (p *Parser) Parse(html string, format hentry.Format) (*hentry.Entry, error) {
	return p.ParseFn(html, format)
}
