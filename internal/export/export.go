// Package export writes the guide as a static site that needs no server.
// Theme and menu state then live in the page script and the browser's
// local storage.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/react-guide/internal/content"
	"github.com/ziadkadry99/react-guide/internal/progress"
	"github.com/ziadkadry99/react-guide/internal/session"
	"github.com/ziadkadry99/react-guide/internal/site"
	"github.com/ziadkadry99/react-guide/internal/theme"
)

// exportVisitor is the session every exported page is rendered through.
const exportVisitor = "export"

// Options configures an export.
type Options struct {
	OutputDir string
	Title     string
	// Theme is the theme pages are rendered with before the page script
	// applies the reader's own preference.
	Theme theme.Theme
}

// Exporter converts the content library into static HTML files.
type Exporter struct {
	lib      *content.Library
	opts     Options
	reporter progress.Reporter
	logger   zerolog.Logger
}

// New creates an Exporter. reporter may be nil.
func New(lib *content.Library, opts Options, reporter progress.Reporter, logger zerolog.Logger) *Exporter {
	if !opts.Theme.Valid() {
		opts.Theme = theme.Default
	}
	return &Exporter{lib: lib, opts: opts, reporter: reporter, logger: logger}
}

// Export writes every page, a not-found page and the assets. Returns the
// number of pages written.
func (e *Exporter) Export() (int, error) {
	if e.opts.OutputDir == "" {
		return 0, fmt.Errorf("no output directory")
	}
	if err := os.MkdirAll(e.opts.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	for rel, body := range site.Assets() {
		if err := e.write(rel, []byte(body)); err != nil {
			return 0, err
		}
	}

	sessions := session.NewRegistry(session.Config{Fallback: e.opts.Theme}, func(string) theme.Store {
		return theme.NewMemoryStore()
	}, e.logger)
	defer sessions.Close()

	s, err := site.New(e.lib, sessions, site.Options{Title: e.opts.Title}, e.logger)
	if err != nil {
		return 0, err
	}
	sess := sessions.Get(exportVisitor, e.opts.Theme)

	paths := e.lib.Paths()
	if e.reporter != nil {
		e.reporter.Start(len(paths))
		defer e.reporter.Finish()
	}

	for i, p := range paths {
		page, _ := e.lib.Lookup(p)
		var buf bytes.Buffer
		if err := s.RenderStatic(&buf, page, sess.Navigate(p, false, "")); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", p, err)
		}
		if err := e.write(OutputPath(p), buf.Bytes()); err != nil {
			return 0, err
		}
		if e.reporter != nil {
			e.reporter.Update(i+1, p)
		}
		e.logger.Debug().Str("path", p).Msg("page exported")
	}

	var buf bytes.Buffer
	if err := s.RenderStatic(&buf, nil, sess.Navigate("/404", false, "")); err != nil {
		return 0, fmt.Errorf("rendering not-found page: %w", err)
	}
	if err := e.write("404.html", buf.Bytes()); err != nil {
		return 0, err
	}

	return len(paths), nil
}

func (e *Exporter) write(rel string, data []byte) error {
	out := filepath.Join(e.opts.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}

// OutputPath maps a site path to the file serving it on a static host:
// "/" to "index.html" and "/workshops/3" to "workshops/3/index.html".
func OutputPath(sitePath string) string {
	trimmed := strings.Trim(sitePath, "/")
	if trimmed == "" {
		return "index.html"
	}
	return trimmed + "/index.html"
}
