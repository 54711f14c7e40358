package instantdoc

import (
	"fmt"
	"strings"
)

// FormatDocument formats a rendered page for display.
// Uses the title if available, falls back to the display name of the
// identifier. The location is printed below the header.
func FormatDocument(doc *Document) string {
	header := doc.Title
	if header == "" {
		header = DisplayName(doc.Identifier)
	}

	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(header)
	b.WriteString("\n")
	if doc.Location != "" {
		b.WriteString("\n")
		b.WriteString(doc.Location)
		b.WriteString("\n")
	}
	if content := strings.TrimSpace(doc.Content); content != "" {
		b.WriteString("\n")
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatResults formats one page of results as numbered lines, starting at
// offset+1. Summaries, when present, are printed after the display name.
func FormatResults(ids []string, offset int, summaries map[string]string) string {
	var b strings.Builder
	for i, id := range ids {
		fmt.Fprintf(&b, "%4d. %s", offset+i+1, DisplayName(id))
		if s := summaries[id]; s != "" {
			b.WriteString("  ")
			b.WriteString(s)
		}
		b.WriteString("\n")
	}
	return b.String()
}
