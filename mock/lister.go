package mock

import (
	"context"

	"github.com/fwojciec/instantdoc"
)

// Compile-time interface verification.
var (
	_ instantdoc.FileLister  = (*FileLister)(nil)
	_ instantdoc.RootLocator = (*RootLocator)(nil)
)

// FileLister is a mock implementation of instantdoc.FileLister.
type FileLister struct {
	ListFilesFn func(ctx context.Context, root string) ([]string, error)
}

func (l *FileLister) ListFiles(ctx context.Context, root string) ([]string, error) {
	return l.ListFilesFn(ctx, root)
}

// RootLocator is a mock implementation of instantdoc.RootLocator.
type RootLocator struct {
	LocateFn func(ctx context.Context, installDir string) (string, error)
}

func (l *RootLocator) Locate(ctx context.Context, installDir string) (string, error) {
	return l.LocateFn(ctx, installDir)
}
