package mock

import "github.com/ranjeethpt/openowl"

var _ openowl.Converter = (*Converter)(nil)

// Converter is a mock implementation of openowl.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
