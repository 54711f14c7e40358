package instantdoc

import (
	"context"
	"strings"
)

// FileLister enumerates the page files of a documentation root.
type FileLister interface {
	// ListFiles returns the paths of the files directly under root,
	// excluding non-content pages.
	// Returns ENOTFOUND if root does not exist.
	ListFiles(ctx context.Context, root string) ([]string, error)
}

// RootLocator finds the documentation root inside an editor installation.
type RootLocator interface {
	// Locate returns the documentation root below installDir.
	// Returns ENOTFOUND if no documentation is installed.
	Locate(ctx context.Context, installDir string) (string, error)
}

// Progress reports how far indexing has come.
type Progress struct {
	Processed int
	Total     int
}

// Fraction returns the completed share of the work in [0, 1].
// An empty workload counts as complete.
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 1
	}
	return float64(p.Processed) / float64(p.Total)
}

// IndexSession builds a DocumentIndex for one documentation root, a batch
// at a time. A session is owned by a single goroutine: Tick mutates it and
// must not run concurrently with any other method.
type IndexSession struct {
	root      string
	index     *DocumentIndex
	pending   []string
	processed int
	total     int
}

// StartIndexing lists the files of root and returns a session ready to be
// ticked. A missing root is not an error: the session is empty and already
// done, which callers report as "no documentation found".
func StartIndexing(ctx context.Context, lister FileLister, root string) (*IndexSession, error) {
	paths, err := lister.ListFiles(ctx, root)
	if ErrorCode(err) == ENOTFOUND {
		paths, err = nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &IndexSession{
		root:    root,
		index:   NewDocumentIndex(len(paths)),
		pending: paths,
		total:   len(paths),
	}, nil
}

// Tick indexes the next batch of pending files and reports whether the
// session is complete. Calling Tick on a complete session does nothing.
func (s *IndexSession) Tick() bool {
	if s.processed == s.total {
		s.pending = nil
		return true
	}

	end := min(s.processed+BatchSize, s.total)
	for _, path := range s.pending[s.processed:end] {
		s.index.insert(IdentifierFromPath(path), path)
	}
	s.processed = end

	if s.processed == s.total {
		s.pending = nil
		return true
	}
	return false
}

// Root returns the documentation root being indexed.
func (s *IndexSession) Root() string {
	return s.root
}

// Progress returns the current indexing cursor.
func (s *IndexSession) Progress() Progress {
	return Progress{Processed: s.processed, Total: s.total}
}

// Done reports whether every file has been indexed.
func (s *IndexSession) Done() bool {
	return s.processed == s.total
}

// Empty reports whether the root held no documentation at all.
func (s *IndexSession) Empty() bool {
	return s.total == 0
}

// Index returns the completed index.
// Returns EINCOMPLETE while indexing is still in progress.
func (s *IndexSession) Index() (*DocumentIndex, error) {
	if !s.Done() {
		return nil, Errorf(EINCOMPLETE, "indexing in progress (%d/%d)", s.processed, s.total)
	}
	return s.index, nil
}

// Search validates the query and runs it against the completed index.
// Returns EINCOMPLETE while indexing is in progress and EINVALID for
// queries shorter than MinQueryLength.
func (s *IndexSession) Search(query string) ([]string, error) {
	index, err := s.Index()
	if err != nil {
		return nil, err
	}
	if err := ValidateQuery(query); err != nil {
		return nil, err
	}
	return Search(strings.TrimSpace(query), index), nil
}
