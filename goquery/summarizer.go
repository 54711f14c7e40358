// Package goquery extracts page descriptions with goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/instantdoc"
)

// Ensure Summarizer implements instantdoc.Summarizer at compile time.
var _ instantdoc.Summarizer = (*Summarizer)(nil)

// descriptionSelectors locate the description paragraph, most specific
// first. Scripting reference pages keep it in the first subsection.
var descriptionSelectors = []string{
	".subsection p",
	"meta[name='description']",
	"main p",
	"p",
}

// Summarizer describes a page by its first description paragraph.
type Summarizer struct {
	// MaxLength truncates summaries longer than this many characters.
	// Zero means no limit.
	MaxLength int
}

// NewSummarizer creates a new Summarizer truncating at maxLength characters.
func NewSummarizer(maxLength int) *Summarizer {
	return &Summarizer{MaxLength: maxLength}
}

// Summarize returns the collapsed text of the first non-empty description.
func (s *Summarizer) Summarize(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", instantdoc.Errorf(instantdoc.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", instantdoc.Errorf(instantdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, selector := range descriptionSelectors {
		var text string
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if content, ok := sel.Attr("content"); ok {
				text = collapse(content)
			} else {
				text = collapse(sel.Text())
			}
			return text == ""
		})
		if text != "" {
			return s.truncate(text), nil
		}
	}
	return "", nil
}

func (s *Summarizer) truncate(text string) string {
	runes := []rune(text)
	if s.MaxLength <= 0 || len(runes) <= s.MaxLength {
		return text
	}
	return strings.TrimSpace(string(runes[:s.MaxLength-1])) + "…"
}

// collapse joins whitespace runs into single spaces.
func collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
