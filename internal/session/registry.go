package session

import (
	"context"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/react-guide/internal/nav"
	"github.com/ziadkadry99/react-guide/internal/theme"
)

// Config controls how sessions are built and how long idle ones live.
type Config struct {
	TTL         time.Duration
	Items       []nav.Item
	ContainerID string
	Fallback    theme.Theme
}

// StoreFunc returns the preference store for a visitor.
type StoreFunc func(visitorID string) theme.Store

// Registry holds the live sessions. Idle sessions expire after the TTL and
// are torn down, releasing their system-preference subscriptions.
type Registry struct {
	cfg    Config
	stores StoreFunc
	logger zerolog.Logger

	// mu guards get-or-create so one visitor never gets two sessions.
	mu      sync.Mutex
	cache   *ttlcache.Cache[string, *Session]
	started bool
}

// NewRegistry creates a registry. Call Start to begin expiring sessions.
func NewRegistry(cfg Config, stores StoreFunc, logger zerolog.Logger) *Registry {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	if len(cfg.Items) == 0 {
		cfg.Items = nav.DefaultItems()
	}
	if cfg.ContainerID == "" {
		cfg.ContainerID = "site-nav"
	}
	if !cfg.Fallback.Valid() {
		cfg.Fallback = theme.Default
	}

	r := &Registry{
		cfg:    cfg,
		stores: stores,
		logger: logger,
		cache: ttlcache.New(
			ttlcache.WithTTL[string, *Session](cfg.TTL),
		),
	}
	r.cache.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, *Session]) {
		item.Value().close()
		r.logger.Debug().Str("visitor", item.Key()).Int("reason", int(reason)).Msg("session evicted")
	})
	return r
}

// Start begins expiring idle sessions in the background.
func (r *Registry) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return
	}
	r.started = true
	go r.cache.Start()
}

// Get returns the visitor's session, creating and initializing it on first
// use. hint is the host color scheme reported with the request, if any.
func (r *Registry) Get(visitorID string, hint theme.Theme) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item := r.cache.Get(visitorID); item != nil {
		return item.Value()
	}

	var store theme.Store
	if r.stores != nil {
		store = r.stores(visitorID)
	}
	s := newSession(visitorID, store, r.cfg, hint, r.logger)
	// An expired entry not yet collected is evicted so its session is torn down.
	r.cache.Delete(visitorID)
	r.cache.Set(visitorID, s, ttlcache.DefaultTTL)
	r.logger.Debug().Str("visitor", visitorID).Str("theme", s.Theme().String()).Msg("session created")
	return s
}

// Remove tears down a visitor's session.
func (r *Registry) Remove(visitorID string) {
	r.mu.Lock()
	item := r.cache.Get(visitorID)
	r.cache.Delete(visitorID)
	r.mu.Unlock()

	if item != nil {
		item.Value().close()
	}
}

// Len returns the number of live sessions. Expired sessions awaiting
// collection are not counted.
func (r *Registry) Len() int {
	return len(r.cache.Items())
}

// Close stops the expiry loop and tears down every session.
func (r *Registry) Close() {
	r.mu.Lock()
	items := r.cache.Items()
	r.cache.DeleteAll()
	started := r.started
	r.started = false
	r.mu.Unlock()

	if started {
		r.cache.Stop()
	}
	for _, item := range items {
		item.Value().close()
	}
}
