// Package fs provides filesystem access to documentation trees.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/instantdoc"
)

// Ensure Lister implements instantdoc.FileLister at compile time.
var _ instantdoc.FileLister = (*Lister)(nil)

// Lister lists the page files directly under a documentation root.
type Lister struct {
	ignores []string
}

// NewLister creates a new Lister. Files whose base name matches one of the
// ignore globs are skipped. With no globs, instantdoc.IgnorePattern is used.
func NewLister(ignores ...string) *Lister {
	if len(ignores) == 0 {
		ignores = []string{instantdoc.IgnorePattern}
	}
	return &Lister{ignores: ignores}
}

// ListFiles returns the full paths of the regular files in root, in
// directory order. Subdirectories are not descended into.
func (l *Lister) ListFiles(ctx context.Context, root string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if errors.Is(err, os.ErrNotExist) {
		return nil, instantdoc.Errorf(instantdoc.ENOTFOUND, "documentation root %q not found", root)
	}
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if l.shouldIgnore(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(root, entry.Name()))
	}
	return paths, nil
}

func (l *Lister) shouldIgnore(name string) bool {
	for _, pattern := range l.ignores {
		matched, err := doublestar.Match(pattern, name)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// ReadFile returns the contents of the page at path.
// Returns ENOTFOUND if the page does not exist.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", instantdoc.Errorf(instantdoc.ENOTFOUND, "page %q not found", path)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
