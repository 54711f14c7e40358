// Package instantdoc provides instant, offline search over a local HTML
// documentation tree. The page index is built incrementally in small
// batches so that an interactive host never blocks on large directories,
// and queries are answered by matching graduated prefixes of the query
// against page identifiers.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, goquery/, rod/).
package instantdoc

// Compile-time tuning of the engine.
const (
	// PageSize is the number of results shown per page.
	PageSize = 30

	// MinQueryLength is the shortest query the search engine accepts.
	MinQueryLength = 3

	// BatchSize is the number of files indexed per tick.
	BatchSize = 100

	// IgnorePattern matches the documentation's own search page, which is
	// not a content page.
	IgnorePattern = "30_search.html"
)
