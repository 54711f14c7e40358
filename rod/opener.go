// Package rod opens documentation pages in a browser using go-rod's launcher.
package rod

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/instantdoc"
	"github.com/go-rod/rod/lib/launcher"
)

// Ensure BrowserOpener implements instantdoc.Opener at compile time.
var _ instantdoc.Opener = (*BrowserOpener)(nil)

// BrowserOpener opens page locations in a browser.
type BrowserOpener struct {
	open func(url string)
}

// OpenerOption configures a BrowserOpener.
type OpenerOption func(*BrowserOpener)

// WithOpenFunc replaces the function that launches the browser.
func WithOpenFunc(fn func(url string)) OpenerOption {
	return func(o *BrowserOpener) {
		o.open = fn
	}
}

// NewBrowserOpener creates a BrowserOpener backed by launcher.Open.
func NewBrowserOpener(opts ...OpenerOption) *BrowserOpener {
	o := &BrowserOpener{open: launcher.Open}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Open launches the browser on location. Local paths must exist and are
// opened as file URLs; http(s) and file URLs are passed through.
func (o *BrowserOpener) Open(ctx context.Context, location string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u, err := ToURL(location)
	if err != nil {
		return err
	}
	o.open(u)
	return nil
}

// ToURL converts a page location to a URL a browser can open.
// Returns ENOTFOUND if a local page does not exist.
func ToURL(location string) (string, error) {
	if location == "" {
		return "", instantdoc.Errorf(instantdoc.EINVALID, "location required")
	}
	for _, scheme := range []string{"http://", "https://", "file://"} {
		if strings.HasPrefix(location, scheme) {
			return location, nil
		}
	}

	abs, err := filepath.Abs(location)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(abs); errors.Is(err, os.ErrNotExist) {
		return "", instantdoc.Errorf(instantdoc.ENOTFOUND, "page %q not found", location)
	} else if err != nil {
		return "", err
	}

	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}
