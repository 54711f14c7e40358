package instantdoc

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// ValidateQuery returns EINVALID unless the trimmed query has at least
// MinQueryLength characters. Search must only be offered for valid queries.
func ValidateQuery(query string) error {
	if n := utf8.RuneCountInString(strings.TrimSpace(query)); n < MinQueryLength {
		return Errorf(EINVALID, "query must be at least %d characters, got %d", MinQueryLength, n)
	}
	return nil
}

// PartialTerms returns the lower-cased prefixes of query used as match
// tiers: tier 0 holds the first MinQueryLength characters and every
// following tier is one character longer, ending with the full query.
func PartialTerms(query string) []string {
	runes := []rune(strings.ToLower(query))
	if len(runes) < MinQueryLength {
		return nil
	}

	terms := make([]string, 0, len(runes)-MinQueryLength+1)
	for n := MinQueryLength; n <= len(runes); n++ {
		terms = append(terms, string(runes[:n]))
	}
	return terms
}

// Search returns the identifiers of index matching query, ranked.
//
// Each identifier is assigned to the first tier of PartialTerms it contains
// and is never listed again in a later tier. Within a tier, shorter
// identifiers rank first; equal lengths keep index order. Tiers are
// concatenated in increasing order.
//
// The query must satisfy ValidateQuery; shorter queries match nothing.
func Search(query string, index *DocumentIndex) []string {
	terms := PartialTerms(query)
	if len(terms) == 0 || index.Len() == 0 {
		return []string{}
	}

	tiers := make([][]string, len(terms))
	for _, id := range index.order {
		lower := strings.ToLower(id)
		for i, term := range terms {
			if !strings.Contains(lower, term) {
				continue
			}
			if !inEarlierTier(tiers[:i], id) {
				tiers[i] = append(tiers[i], id)
			}
			break
		}
	}

	results := make([]string, 0, index.Len())
	for _, tier := range tiers {
		slices.SortStableFunc(tier, func(a, b string) int {
			return utf8.RuneCountInString(a) - utf8.RuneCountInString(b)
		})
		results = append(results, tier...)
	}
	return results
}

// inEarlierTier reports whether id was already assigned to one of tiers.
func inEarlierTier(tiers [][]string, id string) bool {
	for _, tier := range tiers {
		if slices.Contains(tier, id) {
			return true
		}
	}
	return false
}
