// Package content loads the guide's markdown pages and renders them to HTML.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed pages
var embedded embed.FS

// pagePattern selects the markdown sources inside a content filesystem.
const pagePattern = "pages/**/*.md"

// Page is one rendered guide page.
type Page struct {
	Path   string // site path, e.g. "/workshops/3"
	Source string // file inside the content filesystem
	Title  string
	HTML   template.HTML
}

// Library is the set of pages keyed by site path.
type Library struct {
	pages map[string]*Page
	paths []string
}

// Default loads the pages compiled into the binary.
func Default() (*Library, error) {
	return Load(embedded)
}

// Load discovers every page in fsys and renders it.
func Load(fsys fs.FS) (*Library, error) {
	sources, err := doublestar.Glob(fsys, pagePattern)
	if err != nil {
		return nil, fmt.Errorf("finding pages: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no pages matching %s", pagePattern)
	}

	md := newMarkdown()
	lib := &Library{pages: make(map[string]*Page, len(sources))}
	for _, src := range sources {
		raw, err := fs.ReadFile(fsys, src)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", src, err)
		}
		var buf bytes.Buffer
		if err := md.Convert(raw, &buf); err != nil {
			return nil, fmt.Errorf("converting %s: %w", src, err)
		}

		p := &Page{
			Path:   sitePath(src),
			Source: src,
			Title:  extractTitle(string(raw), src),
			HTML:   template.HTML(buf.String()),
		}
		if prev, dup := lib.pages[p.Path]; dup {
			return nil, fmt.Errorf("%s and %s both map to %s", prev.Source, src, p.Path)
		}
		lib.pages[p.Path] = p
		lib.paths = append(lib.paths, p.Path)
	}
	sort.Strings(lib.paths)
	return lib, nil
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("dracula"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// Lookup returns the page served at path.
func (l *Library) Lookup(p string) (*Page, bool) {
	page, ok := l.pages[p]
	return page, ok
}

// Paths returns every site path in lexical order.
func (l *Library) Paths() []string {
	out := make([]string, len(l.paths))
	copy(out, l.paths)
	return out
}

// Len returns the number of pages.
func (l *Library) Len() int { return len(l.paths) }

// sitePath maps "pages/workshops/3.md" to "/workshops/3" and index files to
// their directory.
func sitePath(src string) string {
	rel := strings.TrimPrefix(src, "pages/")
	rel = strings.TrimSuffix(rel, ".md")
	if path.Base(rel) == "index" {
		rel = path.Dir(rel)
		if rel == "." {
			rel = ""
		}
	}
	return "/" + rel
}

// extractTitle returns the first H1 heading or, failing that, the file name.
func extractTitle(content, src string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return strings.TrimSuffix(path.Base(src), ".md")
}
