package site

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/ziadkadry99/react-guide/internal/content"
	"github.com/ziadkadry99/react-guide/internal/session"
)

// pageData is the template input for one page.
type pageData struct {
	SiteTitle  string
	Title      string
	Content    template.HTML
	Nav        template.HTML
	NavID      string
	RootClass  string
	Theme      string
	ThemeColor string
	ScrollTop  bool
	Static     bool
	NotFound   bool
	Path       string
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return tmpl, nil
}

// Render writes page as seen by the session in view. A nil page renders the
// not-found page inside the same themed shell.
func (s *Site) Render(w io.Writer, page *content.Page, view session.View) error {
	return s.render(w, page, view, false)
}

// RenderStatic writes page for hosting without a server: toggles are
// handled by the page script alone.
func (s *Site) RenderStatic(w io.Writer, page *content.Page, view session.View) error {
	return s.render(w, page, view, true)
}

func (s *Site) render(w io.Writer, page *content.Page, view session.View, static bool) error {
	data := pageData{
		SiteTitle:  s.opts.Title,
		Nav:        navbarHTML(view, s.opts.Title, static),
		NavID:      view.ContainerID,
		RootClass:  strings.Join(view.RootClasses, " "),
		Theme:      view.Theme.String(),
		ThemeColor: view.MetaThemeColor,
		ScrollTop:  view.ScrollTop,
		Static:     static,
		Path:       view.Path,
	}
	if page != nil {
		data.Title = page.Title
		data.Content = page.HTML
	} else {
		data.Title = "Page not found"
		data.NotFound = true
	}
	return s.tmpl.Execute(w, data)
}
