package instantdoc

import (
	"context"
	"strings"
)

// Document is a documentation page rendered for reading in a terminal.
type Document struct {
	Identifier string `json:"identifier"`
	Location   string `json:"location"`
	Title      string `json:"title"`
	Content    string `json:"content"` // Markdown
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Identifier == "" {
		return Errorf(EINVALID, "document identifier required")
	}
	if d.Location == "" {
		return Errorf(EINVALID, "document location required")
	}
	return nil
}

// titleSections label the part of the manual a page belongs to in its
// HTML title.
var titleSections = []string{"Scripting API: ", "Manual: "}

// CleanTitle removes the site and section labels of a page title, so
// "Unity - Scripting API: AudioSource.Play" becomes "AudioSource.Play".
// Other titles are returned trimmed.
func CleanTitle(title string) string {
	title = strings.TrimSpace(title)
	candidates := []string{title}
	if _, rest, ok := strings.Cut(title, " - "); ok {
		candidates = append(candidates, rest)
	}
	for _, c := range candidates {
		for _, section := range titleSections {
			if name, ok := strings.CutPrefix(c, section); ok && strings.TrimSpace(name) != "" {
				return strings.TrimSpace(name)
			}
		}
	}
	return title
}

// ExtractResult is the part of a page worth reading.
type ExtractResult struct {
	Title string

	// ContentHTML is the page body without navigation, breadcrumbs, search
	// boxes and feedback forms.
	ContentHTML string
}

// Extractor finds the readable part of a raw page.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter renders extracted HTML as Markdown for the terminal.
type Converter interface {
	Convert(html string) (string, error)
}

// DocumentReader loads and renders a documentation page.
type DocumentReader interface {
	// Read renders the page at location.
	// Returns ENOTFOUND if the page does not exist.
	Read(ctx context.Context, id, location string) (*Document, error)
}
