package instantdoc

import (
	"path/filepath"
	"strings"
)

// knownSuffixes are stripped whole from page filenames, longest first.
var knownSuffixes = []string{".html.gz", ".html", ".htm"}

// IdentifierFromPath derives the search identifier of a page from its path.
// Known page suffixes are removed whole, so "AudioSource.Play.html" yields
// "AudioSource.Play". Any other file loses only its last extension.
func IdentifierFromPath(path string) string {
	name := filepath.Base(path)
	lower := strings.ToLower(name)
	for _, suffix := range knownSuffixes {
		if strings.HasSuffix(lower, suffix) && len(name) > len(suffix) {
			return name[:len(name)-len(suffix)]
		}
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// DisplayName returns the identifier as shown to users. Member pages are
// stored as "Class-member" and displayed as "Class.member".
func DisplayName(id string) string {
	return strings.ReplaceAll(id, "-", ".")
}

// DocumentIndex maps page identifiers to page locations.
// Identifiers are iterated in insertion order.
type DocumentIndex struct {
	locations map[string]string
	order     []string
}

// NewDocumentIndex returns an empty index sized for capacity entries.
func NewDocumentIndex(capacity int) *DocumentIndex {
	if capacity < 0 {
		capacity = 0
	}
	return &DocumentIndex{
		locations: make(map[string]string, capacity),
		order:     make([]string, 0, capacity),
	}
}

// insert adds or overwrites an entry. An overwritten identifier keeps its
// original position.
func (x *DocumentIndex) insert(id, location string) {
	if _, ok := x.locations[id]; !ok {
		x.order = append(x.order, id)
	}
	x.locations[id] = location
}

// Len returns the number of identifiers in the index.
func (x *DocumentIndex) Len() int {
	if x == nil {
		return 0
	}
	return len(x.order)
}

// Location returns the location of the page with the given identifier.
func (x *DocumentIndex) Location(id string) (string, bool) {
	if x == nil {
		return "", false
	}
	loc, ok := x.locations[id]
	return loc, ok
}

// Identifiers returns a copy of all identifiers in insertion order.
func (x *DocumentIndex) Identifiers() []string {
	if x == nil {
		return nil
	}
	ids := make([]string, len(x.order))
	copy(ids, x.order)
	return ids
}
