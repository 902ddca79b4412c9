package content

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/react-guide/internal/nav"
)

func TestDefaultCoversNavigation(t *testing.T) {
	lib, err := Default()
	require.NoError(t, err)

	for _, item := range nav.DefaultItems() {
		if item.Kind == nav.KindLink {
			_, ok := lib.Lookup(item.Path)
			assert.True(t, ok, "missing page for %s", item.Path)
		}
		for _, child := range item.Children {
			_, ok := lib.Lookup(child.Path)
			assert.True(t, ok, "missing page for %s", child.Path)
		}
	}
}

func TestRendersMarkdown(t *testing.T) {
	lib, err := Default()
	require.NoError(t, err)

	page, ok := lib.Lookup("/usestate")
	require.True(t, ok)
	assert.Equal(t, "useState", page.Title)
	assert.Contains(t, string(page.HTML), `<h1 id="usestate">`)
	assert.True(t, strings.Contains(string(page.HTML), "<pre"), "code blocks are highlighted")
}

func TestSitePath(t *testing.T) {
	tests := map[string]string{
		"pages/index.md":                        "/",
		"pages/about.md":                        "/about",
		"pages/workshops/index.md":              "/workshops",
		"pages/workshops/3.md":                  "/workshops/3",
		"pages/designPattern/SRP.md":            "/designPattern/SRP",
		"pages/designPattern/templateMethod.md": "/designPattern/templateMethod",
	}
	for src, want := range tests {
		assert.Equal(t, want, sitePath(src), src)
	}
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"pages/index.md":       {Data: []byte("# Home\n\nhello")},
		"pages/notes/a.md":     {Data: []byte("no heading")},
		"pages/notes/skip.txt": {Data: []byte("ignored")},
	}
	lib, err := Load(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"/", "/notes/a"}, lib.Paths())

	page, _ := lib.Lookup("/notes/a")
	assert.Equal(t, "a", page.Title)
}

func TestLoadRejectsEmptyAndDuplicates(t *testing.T) {
	_, err := Load(fstest.MapFS{})
	assert.Error(t, err)

	_, err = Load(fstest.MapFS{
		"pages/x.md":       {Data: []byte("# X")},
		"pages/x/index.md": {Data: []byte("# X again")},
	})
	assert.Error(t, err)
}
