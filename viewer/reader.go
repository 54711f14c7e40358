// Package viewer renders documentation pages for reading in a terminal.
package viewer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/instantdoc"
	"github.com/fwojciec/instantdoc/fs"
)

// Compile-time interface verification.
var (
	_ instantdoc.DocumentReader = (*Reader)(nil)
	_ instantdoc.Opener         = (*TerminalOpener)(nil)
)

// Reader loads a page from disk, strips boilerplate and converts the main
// content to Markdown.
type Reader struct {
	Extractor instantdoc.Extractor

	// Fallback is tried when Extractor fails or finds no content. Optional.
	Fallback instantdoc.Extractor

	Converter instantdoc.Converter

	// ReadFile loads the raw page. Defaults to fs.ReadFile.
	ReadFile func(path string) (string, error)
}

// Read renders the page at location.
func (r *Reader) Read(ctx context.Context, id, location string) (*instantdoc.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	readFile := r.ReadFile
	if readFile == nil {
		readFile = fs.ReadFile
	}
	raw, err := readFile(location)
	if err != nil {
		return nil, err
	}

	result, err := r.extract(raw)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", id, err)
	}

	doc := &instantdoc.Document{
		Identifier: id,
		Location:   location,
		Title:      instantdoc.CleanTitle(result.Title),
	}
	if strings.TrimSpace(result.ContentHTML) != "" {
		doc.Content, err = r.Converter.Convert(result.ContentHTML)
		if err != nil {
			return nil, fmt.Errorf("converting %s: %w", id, err)
		}
	}
	return doc, doc.Validate()
}

func (r *Reader) extract(raw string) (*instantdoc.ExtractResult, error) {
	result, err := r.Extractor.Extract(raw)
	if err == nil && strings.TrimSpace(result.ContentHTML) != "" {
		return result, nil
	}
	if r.Fallback == nil {
		return result, err
	}

	fallback, ferr := r.Fallback.Extract(raw)
	if ferr != nil {
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	if fallback.Title == "" && result != nil {
		fallback.Title = result.Title
	}
	return fallback, nil
}

// TerminalOpener displays pages by printing them as Markdown.
type TerminalOpener struct {
	Reader instantdoc.DocumentReader
	Out    io.Writer
}

// NewTerminalOpener creates a TerminalOpener printing to out.
func NewTerminalOpener(reader instantdoc.DocumentReader, out io.Writer) *TerminalOpener {
	return &TerminalOpener{Reader: reader, Out: out}
}

// Open renders the page at location and writes it to Out. The identifier
// is derived from the location.
func (o *TerminalOpener) Open(ctx context.Context, location string) error {
	doc, err := o.Reader.Read(ctx, instantdoc.IdentifierFromPath(location), location)
	if err != nil {
		return err
	}
	_, err = io.WriteString(o.Out, instantdoc.FormatDocument(doc))
	return err
}
