package theme

import (
	"sync"

	"github.com/rs/zerolog"
)

// Sink receives every theme the controller settles on. Applying the same
// theme twice must leave the presentation unchanged.
type Sink interface {
	ApplyTheme(t Theme)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// WithFallback overrides the theme used when nothing is persisted and the
// host reports no scheme.
func WithFallback(t Theme) Option {
	return func(c *Controller) {
		if t.Valid() {
			c.fallback = t
		}
	}
}

// Controller is the single source of truth for one visitor's theme.
type Controller struct {
	store    Store
	watcher  Watcher
	sink     Sink
	logger   zerolog.Logger
	fallback Theme

	mu          sync.Mutex
	current     Theme
	initialized bool
	// explicit is set once the visitor's own choice is in force, whether or
	// not the store managed to keep it.
	explicit bool
	closed      bool
	cancel      func()
}

// NewController wires a controller to its collaborators. store and watcher
// may be nil; sink may not.
func NewController(store Store, watcher Watcher, sink Sink, opts ...Option) *Controller {
	c := &Controller{
		store:    store,
		watcher:  watcher,
		sink:     sink,
		logger:   zerolog.Nop(),
		fallback: Default,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize resolves the starting theme (persisted, then system hint, then
// fallback), applies it and starts following system changes. Only the first
// call has any effect.
func (c *Controller) Initialize() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initLocked()
	return c.current
}

func (c *Controller) initLocked() {
	if c.initialized {
		return
	}
	c.initialized = true

	source := "default"
	c.current = c.fallback
	if t, ok := storedTheme(c.store); ok {
		c.current = t
		c.explicit = true
		source = "preference"
	} else if c.watcher != nil {
		if t, ok := c.watcher.Current(); ok && t.Valid() {
			c.current = t
			source = "system"
		}
	}
	c.sink.ApplyTheme(c.current)

	if c.watcher != nil && !c.closed {
		c.cancel = c.watcher.OnChange(c.onSystemChange)
	}
	c.logger.Debug().Str("theme", c.current.String()).Str("source", source).Msg("theme initialized")
}

// Theme returns the current theme. Before Initialize it reports the fallback.
func (c *Controller) Theme() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return c.fallback
	}
	return c.current
}

// Toggle flips the theme, persists the result as the visitor's explicit
// choice and applies it.
func (c *Controller) Toggle() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initLocked()

	c.current = c.current.Complement()
	c.explicit = true
	if c.store != nil {
		c.store.Set(PreferenceKey, c.current.String())
	}
	c.sink.ApplyTheme(c.current)
	c.logger.Debug().Str("theme", c.current.String()).Msg("theme toggled")
	return c.current
}

// onSystemChange follows the host scheme until the visitor has made an
// explicit choice. It never writes the store.
func (c *Controller) onSystemChange(t Theme) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.explicit || !t.Valid() {
		return
	}
	// Another session of the same visitor may have saved a choice since.
	if _, ok := storedTheme(c.store); ok {
		return
	}
	c.current = t
	c.sink.ApplyTheme(t)
	c.logger.Debug().Str("theme", t.String()).Msg("theme follows system")
}

// Close releases the system subscription. Safe to call more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.closed = true
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}
