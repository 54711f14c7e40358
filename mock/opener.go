package mock

import (
	"context"

	"github.com/fwojciec/instantdoc"
)

// Compile-time interface verification.
var (
	_ instantdoc.Opener         = (*Opener)(nil)
	_ instantdoc.Summarizer     = (*Summarizer)(nil)
	_ instantdoc.DocumentReader = (*DocumentReader)(nil)
)

// Opener is a mock implementation of instantdoc.Opener.
type Opener struct {
	OpenFn func(ctx context.Context, location string) error
}

func (o *Opener) Open(ctx context.Context, location string) error {
	return o.OpenFn(ctx, location)
}

// Summarizer is a mock implementation of instantdoc.Summarizer.
type Summarizer struct {
	SummarizeFn func(html string) (string, error)
}

func (s *Summarizer) Summarize(html string) (string, error) {
	return s.SummarizeFn(html)
}

// DocumentReader is a mock implementation of instantdoc.DocumentReader.
type DocumentReader struct {
	ReadFn func(ctx context.Context, id, location string) (*instantdoc.Document, error)
}

func (r *DocumentReader) Read(ctx context.Context, id, location string) (*instantdoc.Document, error) {
	return r.ReadFn(ctx, id, location)
}
