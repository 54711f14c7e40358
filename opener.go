package instantdoc

import "context"

// Opener hands a page location to a viewer.
type Opener interface {
	// Open displays the page at location.
	Open(ctx context.Context, location string) error
}

// Summarizer describes a page in one line.
type Summarizer interface {
	// Summarize returns a short plain-text description of the HTML page.
	// Returns an empty string if the page has no description.
	Summarize(html string) (string, error)
}
