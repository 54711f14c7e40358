// Package htmltomarkdown renders documentation HTML as Markdown.
package htmltomarkdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/instantdoc"
)

// Ensure Converter implements instantdoc.Converter at compile time.
var _ instantdoc.Converter = (*Converter)(nil)

// chromeLines are feedback and navigation widgets of the offline manual
// that extraction sometimes keeps. Matched against whole lines, link
// syntax removed.
var chromeLines = map[string]bool{
	"Leave feedback":      true,
	"Suggest a change":    true,
	"Switch to Manual":    true,
	"Switch to Scripting": true,
	"Success!":            true,
	"Submission failed":   true,
	"Close":               true,
	"Cancel":              true,
}

var (
	linkLine   = regexp.MustCompile(`^\[([^\]]*)\]\([^)]*\)$`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

// Converter renders the main content of reference pages as Markdown.
// Member tables are kept as Markdown tables.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
			strikethrough.NewStrikethroughPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown without the manual's
// feedback widgets.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", instantdoc.Errorf(instantdoc.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting to markdown: %w", err)
	}
	return stripChrome(md), nil
}

func stripChrome(md string) string {
	lines := strings.Split(md, "\n")
	kept := lines[:0]
	for _, line := range lines {
		text := strings.TrimSpace(line)
		if m := linkLine.FindStringSubmatch(text); m != nil {
			text = m[1]
		}
		if chromeLines[text] {
			continue
		}
		kept = append(kept, line)
	}
	md = strings.Join(kept, "\n")
	return strings.TrimSpace(blankLines.ReplaceAllString(md, "\n\n"))
}
