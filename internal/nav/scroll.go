package nav

import "strings"

// Viewport is the scrollable page area.
type Viewport interface {
	ScrollTo(top int)
}

// ScrollRestorer brings the viewport back to the top whenever an in-site
// link is followed.
type ScrollRestorer struct {
	viewport Viewport
}

// NewScrollRestorer creates a ScrollRestorer for viewport.
func NewScrollRestorer(viewport Viewport) *ScrollRestorer {
	return &ScrollRestorer{viewport: viewport}
}

// OnLinkActivated scrolls to the top for internal hrefs and reports whether
// it did.
func (r *ScrollRestorer) OnLinkActivated(href string) bool {
	if !strings.HasPrefix(href, "/") || strings.HasPrefix(href, "//") {
		return false
	}
	r.viewport.ScrollTo(0)
	return true
}
