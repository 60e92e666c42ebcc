package mock

import "github.com/fwojciec/hentry"

var _ hentry.Converter = (*Converter)(nil)

// Converter is a mock implementation of hentry.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
