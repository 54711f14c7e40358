package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/instantdoc"
)

// Ensure Locator implements instantdoc.RootLocator at compile time.
var _ instantdoc.RootLocator = (*Locator)(nil)

// Locator finds the scripting reference inside an editor installation laid
// out as <install>/Data/Documentation/<language>/ScriptReference.
type Locator struct {
	// Language is the preferred two-letter language code. English is tried
	// next, then the first installed language.
	Language string
}

// NewLocator creates a new Locator preferring the given language.
func NewLocator(language string) *Locator {
	return &Locator{Language: language}
}

// Locate returns the ScriptReference directory of the preferred language.
// Unreadable directories count as missing.
func (l *Locator) Locate(ctx context.Context, installDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	docDir := filepath.Join(installDir, "Data", "Documentation")
	entries, err := os.ReadDir(docDir)
	if err != nil {
		return "", instantdoc.Errorf(instantdoc.ENOTFOUND, "no documentation installed in %q", installDir)
	}

	var languages []string
	for _, entry := range entries {
		if entry.IsDir() {
			languages = append(languages, entry.Name())
		}
	}
	if len(languages) == 0 {
		return "", instantdoc.Errorf(instantdoc.ENOTFOUND, "no documentation installed in %q", installDir)
	}

	for _, lang := range l.candidates(languages) {
		root := filepath.Join(docDir, lang, "ScriptReference")
		if info, err := os.Stat(root); err == nil && info.IsDir() {
			return root, nil
		}
	}
	return "", instantdoc.Errorf(instantdoc.ENOTFOUND, "no script reference installed in %q", docDir)
}

// candidates orders installed languages by preference.
func (l *Locator) candidates(installed []string) []string {
	var out []string
	for _, want := range []string{l.Language, "en"} {
		for _, lang := range installed {
			if want != "" && lang == want {
				out = append(out, lang)
			}
		}
	}
	return append(out, installed...)
}
