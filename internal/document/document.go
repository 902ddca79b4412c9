// Package document is the server-side model of a visitor's page: the root
// element classes, head meta tags and pending scroll that the next rendered
// page or state snapshot carries to the browser.
package document

import (
	"sort"
	"sync"

	"github.com/ziadkadry99/react-guide/internal/nav"
	"github.com/ziadkadry99/react-guide/internal/theme"
)

// ThemeColorMeta is the name of the meta tag browsers use to tint their chrome.
const ThemeColorMeta = "theme-color"

// Document is one visitor's page.
type Document struct {
	mu        sync.Mutex
	classes   map[string]bool
	meta      map[string]string
	scrollTop bool
}

var (
	_ theme.Sink   = (*Document)(nil)
	_ nav.Viewport = (*Document)(nil)
)

// New creates a document. metaNames lists the meta tags the page declares;
// only declared tags are updated.
func New(metaNames ...string) *Document {
	d := &Document{
		classes: make(map[string]bool),
		meta:    make(map[string]string),
	}
	for _, name := range metaNames {
		d.meta[name] = ""
	}
	return d
}

// ApplyTheme marks the root element with exactly one theme class and updates
// the theme-color meta tag when the page declares it.
func (d *Document) ApplyTheme(t theme.Theme) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.classes, theme.Light.ClassName())
	delete(d.classes, theme.Dark.ClassName())
	d.classes[t.ClassName()] = true

	if _, ok := d.meta[ThemeColorMeta]; ok {
		d.meta[ThemeColorMeta] = t.Color()
	}
}

// ScrollTo records a scroll request. Only returning to the top is supported
// by the page script, so any offset requests the top.
func (d *Document) ScrollTo(int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scrollTop = true
}

// AddClass adds a root class unrelated to theming.
func (d *Document) AddClass(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.classes[name] = true
}

// HasClass reports whether the root element carries name.
func (d *Document) HasClass(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.classes[name]
}

// Classes returns the root classes in a stable order.
func (d *Document) Classes() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, 0, len(d.classes))
	for c := range d.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Meta returns the content of a declared meta tag.
func (d *Document) Meta(name string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.meta[name]
	return v, ok
}

// TakeScroll reports and clears a pending scroll request.
func (d *Document) TakeScroll() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	v := d.scrollTop
	d.scrollTop = false
	return v
}
