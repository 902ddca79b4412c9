// Package session gives every visitor their own theme controller and
// navigation bar, and serializes the events that drive them.
package session

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/react-guide/internal/document"
	"github.com/ziadkadry99/react-guide/internal/nav"
	"github.com/ziadkadry99/react-guide/internal/theme"
)

// Session is one visitor's page state. All reads and writes go through
// turns so that an event is fully applied before the next one is seen.
type Session struct {
	id string

	mu     sync.Mutex
	theme  *theme.Controller
	nav    *nav.Machine
	signal *theme.Signal
	doc    *document.Document
	scroll *nav.ScrollRestorer
	closed bool
	once   sync.Once
}

func newSession(id string, store theme.Store, cfg Config, hint theme.Theme, logger zerolog.Logger) *Session {
	doc := document.New(document.ThemeColorMeta)
	signal := theme.NewSignal()
	if hint.Valid() {
		signal.Set(hint)
	}

	ctrl := theme.NewController(store, signal, doc,
		theme.WithLogger(logger.With().Str("visitor", id).Logger()),
		theme.WithFallback(cfg.Fallback),
	)
	ctrl.Initialize()

	return &Session{
		id:     id,
		theme:  ctrl,
		nav:    nav.NewMachine(cfg.Items, cfg.ContainerID),
		signal: signal,
		doc:    doc,
		scroll: nav.NewScrollRestorer(doc),
	}
}

// ID returns the visitor id the session belongs to.
func (s *Session) ID() string { return s.id }

// Theme returns the current theme.
func (s *Session) Theme() theme.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme.Theme()
}

// Navigate applies a page load of path and returns what the page should
// render. viaLink marks loads that come from following an in-site link.
func (s *Session) Navigate(path string, viaLink bool, hint theme.Theme) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.signal.Set(hint)
	if viaLink {
		s.scroll.OnLinkActivated(path)
	}
	s.nav.OnRouteChange(path)
	return s.viewLocked()
}

// Snapshot returns the state without changing it, apart from consuming a
// pending scroll request.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// View returns the state needed to render a page.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	color, _ := s.doc.Meta(document.ThemeColorMeta)
	return View{
		Snapshot:       s.snapshotLocked(),
		RootClasses:    s.doc.Classes(),
		MetaThemeColor: color,
		Items:          s.nav.Items(),
		ContainerID:    s.nav.ContainerID(),
	}
}

func (s *Session) snapshotLocked() Snapshot {
	st := s.nav.State()
	t := s.theme.Theme()
	return Snapshot{
		Theme:          t,
		ThemeClass:     t.ClassName(),
		ThemeColor:     t.Color(),
		MobileMenuOpen: st.MobileMenuOpen,
		OpenDropdown:   st.OpenDropdown,
		ActiveSection:  st.ActiveSection,
		Path:           st.Path,
		ScrollTop:      s.doc.TakeScroll(),
	}
}

// close tears the session down. It waits for an in-flight turn to finish.
func (s *Session) close() {
	s.once.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.closed = true
		s.theme.Close()
	})
}

// Closed reports whether the session has been torn down.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// View is everything a page template needs from the session.
type View struct {
	Snapshot
	RootClasses    []string
	MetaThemeColor string
	Items          []nav.Item
	ContainerID    string
}

// Snapshot is the client-visible state of a session.
type Snapshot struct {
	Theme          theme.Theme `json:"theme"`
	ThemeClass     string      `json:"theme_class"`
	ThemeColor     string      `json:"theme_color"`
	MobileMenuOpen bool        `json:"mobile_menu_open"`
	OpenDropdown   string      `json:"open_dropdown"`
	ActiveSection  nav.Section `json:"active_section"`
	Path           string      `json:"path"`
	ScrollTop      bool        `json:"scroll_top"`
}

// IsActiveLink reports whether path is the page being shown.
func (v View) IsActiveLink(path string) bool { return v.Path == path }
