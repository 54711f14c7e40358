package instantdoc_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/instantdoc"
	"github.com/stretchr/testify/assert"
)

func TestValidateQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		valid bool
	}{
		{"", false},
		{"ab", false},
		{"   ab   ", false},
		{"abc", true},
		{" abc ", true},
		{"Audio", true},
		{"éèà", true},
	}

	for _, tt := range tests {
		err := instantdoc.ValidateQuery(tt.query)
		if tt.valid {
			assert.NoError(t, err, "query %q", tt.query)
		} else {
			assert.Equal(t, instantdoc.EINVALID, instantdoc.ErrorCode(err), "query %q", tt.query)
		}
	}
}

func TestPartialTerms(t *testing.T) {
	t.Parallel()

	t.Run("graduated lower-cased prefixes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"aud", "audi", "audio"}, instantdoc.PartialTerms("Audio"))
	})

	t.Run("minimum length query has one tier", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"xyz"}, instantdoc.PartialTerms("XYZ"))
	})

	t.Run("tier count is length minus two", func(t *testing.T) {
		t.Parallel()

		terms := instantdoc.PartialTerms("transform")
		assert.Len(t, terms, len("transform")-2)
		assert.Equal(t, "tra", terms[0])
		assert.Equal(t, "transform", terms[len(terms)-1])
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"éco", "écol", "école"}, instantdoc.PartialTerms("École"))
	})

	t.Run("short query has no tiers", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, instantdoc.PartialTerms("ab"))
	})
}

// Story: Tiered Ranking
// Results are grouped by the first tier they match and sorted by length.

func TestSearch_AudioScenario(t *testing.T) {
	t.Parallel()

	// Given three audio pages
	index := buildIndex(t,
		"/docs/AudioSource-Play.html",
		"/docs/AudioClip-Create.html",
		"/docs/Audio-Overview.html",
	)

	// When searching for "audio"
	results := instantdoc.Search("audio", index)

	// Then all match the first tier and are ordered by length
	assert.Equal(t, []string{"Audio-Overview", "AudioClip-Create", "AudioSource-Play"}, results)
}

func TestSearch_NoMatch(t *testing.T) {
	t.Parallel()

	index := buildIndex(t, "/docs/Foo.html", "/docs/Bar.html")

	results := instantdoc.Search("xyz", index)

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearch_EmptyIndex(t *testing.T) {
	t.Parallel()

	assert.Empty(t, instantdoc.Search("audio", instantdoc.NewDocumentIndex(0)))
	assert.Empty(t, instantdoc.Search("audio", nil))
}

func TestSearch_ShortQueryMatchesNothing(t *testing.T) {
	t.Parallel()

	index := buildIndex(t, "/docs/Foo.html")

	assert.Empty(t, instantdoc.Search("fo", index))
}

func TestSearch_CaseInsensitive(t *testing.T) {
	t.Parallel()

	index := buildIndex(t, "/docs/RigidBody.html", "/docs/Rigidbody2D.html", "/docs/Camera.html")

	results := instantdoc.Search("RIGIDBODY", index)

	assert.Equal(t, []string{"RigidBody", "Rigidbody2D"}, results)
}

func TestSearch_PartialQueryStillMatchesPrefix(t *testing.T) {
	t.Parallel()

	// Given pages matching only the leading characters of the query
	index := buildIndex(t, "/docs/Transform.html", "/docs/Transparency.html", "/docs/Camera.html")

	// When searching for a longer, misspelt term
	results := instantdoc.Search("transformx", index)

	// Then pages matching the shortest tier are still returned
	assert.Equal(t, []string{"Transform", "Transparency"}, results)
}

func TestSearch_EqualLengthsKeepIndexOrder(t *testing.T) {
	t.Parallel()

	index := buildIndex(t,
		"/docs/MeshB.html",
		"/docs/MeshA.html",
		"/docs/Mesh.html",
		"/docs/MeshC.html",
	)

	results := instantdoc.Search("mesh", index)

	assert.Equal(t, []string{"Mesh", "MeshB", "MeshA", "MeshC"}, results)
}

func TestSearch_Properties(t *testing.T) {
	t.Parallel()

	index := buildIndex(t,
		"/docs/Animator.html",
		"/docs/Animation.html",
		"/docs/AnimationClip.html",
		"/docs/Animator-Play.html",
		"/docs/AnimatorController.html",
		"/docs/NavMeshAgent.html",
		"/docs/Manual-Animation.html",
		"/docs/Canvas.html",
	)

	for _, query := range []string{"ani", "anim", "animator", "animation", "nav", "zzz"} {
		t.Run(query, func(t *testing.T) {
			t.Parallel()

			results := instantdoc.Search(query, index)
			terms := instantdoc.PartialTerms(query)

			seen := make(map[string]bool)
			prevTier, prevLen := 0, 0
			for _, id := range results {
				// Each identifier appears exactly once
				assert.False(t, seen[id], "duplicate %q", id)
				seen[id] = true

				// Each identifier contains a tier; tiers never go backwards
				tier := firstTier(id, terms)
				assert.GreaterOrEqual(t, tier, 0, "%q matches no tier", id)
				assert.GreaterOrEqual(t, tier, prevTier)

				// Lengths never decrease within a tier
				n := utf8.RuneCountInString(id)
				if tier == prevTier {
					assert.GreaterOrEqual(t, n, prevLen)
				}
				prevTier, prevLen = tier, n
			}

			// Every matching identifier is returned
			for _, id := range index.Identifiers() {
				if firstTier(id, terms) >= 0 {
					assert.True(t, seen[id], "missing %q", id)
				}
			}
		})
	}
}

// firstTier returns the index of the first term contained in id, or -1.
func firstTier(id string, terms []string) int {
	lower := strings.ToLower(id)
	for i, term := range terms {
		if strings.Contains(lower, term) {
			return i
		}
	}
	return -1
}
