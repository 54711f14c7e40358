package instantdoc

import "fmt"

// MaxPageIndex returns the index of the last page of n results split into
// pages of size items. The last page is never empty unless n is zero, in
// which case page 0 exists and is empty.
func MaxPageIndex(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n - 1) / size
}

// PageCount returns the number of pages of n results.
func PageCount(n, size int) int {
	return MaxPageIndex(n, size) + 1
}

// SetPage returns page index of results split into pages of size items.
// Every page holds size items except the last, which holds the remainder
// (a full page when len(results) is a multiple of size).
// Returns EINVALID when index is outside [0, MaxPageIndex]; it does not clamp.
func SetPage(results []string, size, index int) ([]string, error) {
	if size <= 0 {
		return nil, Errorf(EINVALID, "page size must be positive, got %d", size)
	}
	if maxIndex := MaxPageIndex(len(results), size); index < 0 || index > maxIndex {
		return nil, Errorf(EINVALID, "page %d out of range [0, %d]", index, maxIndex)
	}

	start := size * index
	end := min(start+size, len(results))
	return results[start:end], nil
}

// Pagination is a view of ranked results one page at a time.
type Pagination struct {
	Results []string
	Size    int
	Index   int
}

// NewPagination returns a view of results at page 0 with PageSize items per page.
func NewPagination(results []string) Pagination {
	return Pagination{Results: results, Size: PageSize}
}

// MaxIndex returns the index of the last page.
func (p Pagination) MaxIndex() int {
	return MaxPageIndex(len(p.Results), p.Size)
}

// Items returns the results on the current page.
func (p Pagination) Items() []string {
	items, err := SetPage(p.Results, p.Size, p.Index)
	if err != nil {
		return nil
	}
	return items
}

// Offset returns the position in Results of the first item on the page.
func (p Pagination) Offset() int {
	return p.Size * p.Index
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool {
	return p.Index > 0
}

// HasNext reports whether a next page exists.
func (p Pagination) HasNext() bool {
	return p.Index < p.MaxIndex()
}

// Next returns the view moved one page forward.
// Returns EINVALID on the last page.
func (p Pagination) Next() (Pagination, error) {
	if !p.HasNext() {
		return p, Errorf(EINVALID, "already on the last page")
	}
	p.Index++
	return p, nil
}

// Prev returns the view moved one page back.
// Returns EINVALID on the first page.
func (p Pagination) Prev() (Pagination, error) {
	if !p.HasPrev() {
		return p, Errorf(EINVALID, "already on the first page")
	}
	p.Index--
	return p, nil
}

// Label returns the one-based position, e.g. "page 2/3".
func (p Pagination) Label() string {
	return fmt.Sprintf("page %d/%d", p.Index+1, p.MaxIndex()+1)
}
