package mock

import "github.com/kevinshome/pepper"

var _ pepper.Converter = (*Converter)(nil)

// Converter is a mock implementation of pepper.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
