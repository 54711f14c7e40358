package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/instantdoc"
	"github.com/fwojciec/instantdoc/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referencePage = `<!DOCTYPE html>
<html>
<head>
<title>Unity - Scripting API: AudioSource.Play</title>
<meta property="og:title" content="AudioSource.Play">
</head>
<body>
<div class="header-wrapper"><nav><a href="index.html">Manual</a><a href="30_search.html">Search</a></nav></div>
<div id="content-wrap">
<article>
<h1>AudioSource.Play</h1>
<p>Plays the clip assigned to the audio source. The clip starts playing after the given delay
and keeps playing until it reaches the end or the source is stopped from a script.</p>
<pre><code>audioSource.Play();</code></pre>
<p>Calling Play on a source that is already playing restarts the clip from the beginning,
which is useful when a short sound effect must be triggered repeatedly.</p>
</article>
</div>
<footer>Copyright © Unity Technologies</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts the page title", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(referencePage)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("keeps the article body", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(referencePage)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Plays the clip assigned to the audio source")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract("   ")

		assert.Equal(t, instantdoc.EINVALID, instantdoc.ErrorCode(err))
	})
}
