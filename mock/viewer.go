package mock

import "github.com/fwojciec/instantdoc"

// Compile-time interface verification.
var (
	_ instantdoc.Extractor = (*Extractor)(nil)
	_ instantdoc.Converter = (*Converter)(nil)
)

// Extractor is a mock implementation of instantdoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*instantdoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*instantdoc.ExtractResult, error) {
	return e.ExtractFn(html)
}

// Converter is a mock implementation of instantdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
