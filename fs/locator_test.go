package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/instantdoc"
	"github.com/fwojciec/instantdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// installDocs creates a ScriptReference directory for each language.
func installDocs(t *testing.T, install string, languages ...string) {
	t.Helper()
	for _, lang := range languages {
		dir := filepath.Join(install, "Data", "Documentation", lang, "ScriptReference")
		require.NoError(t, os.MkdirAll(dir, 0755))
	}
}

func TestLocator_Locate(t *testing.T) {
	t.Parallel()

	t.Run("prefers the configured language", func(t *testing.T) {
		t.Parallel()

		install := t.TempDir()
		installDocs(t, install, "de", "en", "fr")

		root, err := fs.NewLocator("fr").Locate(context.Background(), install)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(install, "Data", "Documentation", "fr", "ScriptReference"), root)
	})

	t.Run("falls back to english", func(t *testing.T) {
		t.Parallel()

		install := t.TempDir()
		installDocs(t, install, "de", "en")

		root, err := fs.NewLocator("ja").Locate(context.Background(), install)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(install, "Data", "Documentation", "en", "ScriptReference"), root)
	})

	t.Run("falls back to the first installed language", func(t *testing.T) {
		t.Parallel()

		install := t.TempDir()
		installDocs(t, install, "ko")

		root, err := fs.NewLocator("").Locate(context.Background(), install)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(install, "Data", "Documentation", "ko", "ScriptReference"), root)
	})

	t.Run("returns not found without documentation", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewLocator("en").Locate(context.Background(), t.TempDir())

		assert.Equal(t, instantdoc.ENOTFOUND, instantdoc.ErrorCode(err))
	})

	t.Run("returns not found without language directories", func(t *testing.T) {
		t.Parallel()

		install := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(install, "Data", "Documentation"), 0755))

		_, err := fs.NewLocator("en").Locate(context.Background(), install)

		assert.Equal(t, instantdoc.ENOTFOUND, instantdoc.ErrorCode(err))
	})

	t.Run("skips languages without a script reference", func(t *testing.T) {
		t.Parallel()

		install := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(install, "Data", "Documentation", "en", "Manual"), 0755))
		installDocs(t, install, "zh")

		root, err := fs.NewLocator("en").Locate(context.Background(), install)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(install, "Data", "Documentation", "zh", "ScriptReference"), root)
	})
}
