package instantdoc_test

import (
	"testing"

	"github.com/fwojciec/instantdoc"
	"github.com/stretchr/testify/assert"
)

func TestIdentifierFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"strips html suffix", "/docs/AudioSource.html", "AudioSource"},
		{"keeps dotted member names", "/docs/AudioSource.Play.html", "AudioSource.Play"},
		{"keeps dashed member names", "/docs/AudioSource-clip.html", "AudioSource-clip"},
		{"strips compressed html", "/docs/Animator.html.gz", "Animator"},
		{"strips htm", "/docs/index.htm", "index"},
		{"suffix match is case insensitive", "/docs/README.HTML", "README"},
		{"strips other extensions once", "/docs/notes.txt", "notes"},
		{"no extension", "/docs/LICENSE", "LICENSE"},
		{"bare suffix is an extension", "/docs/.html", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, instantdoc.IdentifierFromPath(tt.path))
		})
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "AudioSource.clip", instantdoc.DisplayName("AudioSource-clip"))
	assert.Equal(t, "Audio.Overview", instantdoc.DisplayName("Audio-Overview"))
	assert.Equal(t, "Animator", instantdoc.DisplayName("Animator"))
}

func TestDocumentIndex_NilIsEmpty(t *testing.T) {
	t.Parallel()

	var index *instantdoc.DocumentIndex

	assert.Equal(t, 0, index.Len())
	assert.Nil(t, index.Identifiers())
	_, ok := index.Location("Foo")
	assert.False(t, ok)
}

func TestNewDocumentIndex_NegativeCapacity(t *testing.T) {
	t.Parallel()

	index := instantdoc.NewDocumentIndex(-1)

	assert.Equal(t, 0, index.Len())
	assert.Empty(t, index.Identifiers())
}
