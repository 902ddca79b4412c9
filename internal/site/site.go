// Package site serves the guide: themed pages with the navigation bar, the
// JSON and websocket event endpoints that drive a visitor's session, and
// form fallbacks for browsers without script.
package site

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/react-guide/internal/content"
	"github.com/ziadkadry99/react-guide/internal/session"
	"github.com/ziadkadry99/react-guide/internal/theme"
)

const (
	// VisitorCookie identifies a visitor across requests and sessions.
	VisitorCookie = "rg_visitor"
	visitorMaxAge = 365 * 24 * time.Hour

	// HintHeader is the client hint carrying the host color scheme.
	HintHeader = "Sec-CH-Prefers-Color-Scheme"

	// viaParam marks a page load that came from a navigation link.
	viaParam = "via"
	viaNav   = "nav"
)

// Options configures a Site.
type Options struct {
	Title string
	// SecureCookies marks the visitor cookie Secure.
	SecureCookies bool
}

// Site renders pages and handles session events.
type Site struct {
	lib      *content.Library
	sessions *session.Registry
	opts     Options
	logger   zerolog.Logger
	tmpl     *template.Template
}

// New creates a Site over the given pages and sessions.
func New(lib *content.Library, sessions *session.Registry, opts Options, logger zerolog.Logger) (*Site, error) {
	if opts.Title == "" {
		opts.Title = "React Guide"
	}
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Site{
		lib:      lib,
		sessions: sessions,
		opts:     opts,
		logger:   logger,
		tmpl:     tmpl,
	}, nil
}

// RegisterRoutes mounts the site onto the given router.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get("/assets/style.css", serveAsset("text/css; charset=utf-8", cssContent))
	r.Get("/assets/app.js", serveAsset("application/javascript; charset=utf-8", jsContent))

	r.Get("/api/state", s.handleState)
	r.Post("/api/events", s.handleEvent)
	r.Get("/ws/events", s.handleWebSocket)

	r.Post("/theme/toggle", s.handleFormEvent(func(*http.Request) session.Event {
		return session.Event{Type: session.EventToggleTheme}
	}))
	r.Post("/nav/menu", s.handleFormEvent(func(*http.Request) session.Event {
		return session.Event{Type: session.EventToggleMenu}
	}))
	r.Post("/nav/dropdown/{id}", s.handleFormEvent(func(r *http.Request) session.Event {
		return session.Event{Type: session.EventToggleDropdown, ID: chi.URLParam(r, "id")}
	}))

	r.Get("/*", s.handlePage)
}

// visitor returns the visitor id from the request cookie, issuing a new one
// when it is missing or malformed.
func (s *Site) visitor(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(VisitorCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, s.visitorCookie(id))
	return id
}

func (s *Site) visitorCookie(id string) *http.Cookie {
	return &http.Cookie{
		Name:     VisitorCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(visitorMaxAge / time.Second),
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

// session returns the visitor's session, creating it from the request's
// color-scheme hint on first use.
func (s *Site) session(w http.ResponseWriter, r *http.Request) *session.Session {
	w.Header().Set("Accept-CH", HintHeader)
	w.Header().Add("Vary", HintHeader)
	return s.sessions.Get(s.visitor(w, r), hintFrom(r))
}

// hintFrom reads the host color scheme from the client hint. Browsers send
// the value quoted.
func hintFrom(r *http.Request) theme.Theme {
	v := strings.Trim(strings.TrimSpace(r.Header.Get(HintHeader)), `"`)
	t, err := theme.Parse(strings.ToLower(v))
	if err != nil {
		return ""
	}
	return t
}

// localPath reports whether p is a path on this site.
func localPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, `/\`)
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write([]byte(body))
	}
}

// Assets returns the static files pages reference, keyed by their path
// relative to the site root.
func Assets() map[string]string {
	return map[string]string{
		"assets/style.css": cssContent,
		"assets/app.js":    jsContent,
	}
}
