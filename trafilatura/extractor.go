// Package trafilatura extracts the main content of documentation pages
// with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/instantdoc"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements instantdoc.Extractor at compile time.
var _ instantdoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to strip page chrome from local
// documentation pages.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor. Tables and links are kept since
// reference pages list members in tables.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
			IncludeLinks:   true,
		},
	}
}

// Extract returns the page title and main content.
func (e *Extractor) Extract(rawHTML string) (*instantdoc.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, instantdoc.Errorf(instantdoc.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, instantdoc.Errorf(instantdoc.EINVALID, "failed to extract content: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &instantdoc.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
