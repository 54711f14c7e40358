// Package readability extracts the main content of documentation pages
// with go-readability. It serves pages trafilatura cannot make sense of.
package readability

import (
	"strings"

	"github.com/fwojciec/instantdoc"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements instantdoc.Extractor at compile time.
var _ instantdoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title and content. Index and navigation pages
// too thin to hold an article yield an empty result.
func (e *Extractor) Extract(rawHTML string) (*instantdoc.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, instantdoc.Errorf(instantdoc.EINVALID, "empty HTML input")
	}

	if !readability.Check(strings.NewReader(rawHTML)) {
		return &instantdoc.ExtractResult{}, nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, instantdoc.Errorf(instantdoc.EINVALID, "failed to extract content: %v", err)
	}

	return &instantdoc.ExtractResult{
		Title:       instantdoc.CleanTitle(article.Title),
		ContentHTML: article.Content,
	}, nil
}
