package theme

import "sync"

// Watcher reports the host environment's color-scheme hint.
type Watcher interface {
	// Current returns the hint at call time, or false when the host has not
	// reported one.
	Current() (Theme, bool)

	// OnChange registers fn for every change of the hint. The returned cancel
	// func is synchronous and idempotent: once it returns, fn is never called
	// again. fn must not cancel its own registration.
	OnChange(fn func(Theme)) (cancel func())
}

// Signal is a Watcher fed by whoever observes the host, typically the HTTP
// layer reading client hints and matchMedia reports from the page.
//
// Callbacks run synchronously on the goroutine calling Set. Owners that
// share a Signal across goroutines serialize Set and cancel themselves.
type Signal struct {
	mu      sync.Mutex
	current Theme
	known   bool
	nextID  int
	subs    map[int]*subscription
}

// subscription guards one callback so cancel waits out a delivery in flight.
type subscription struct {
	mu        sync.Mutex
	fn        func(Theme)
	cancelled bool
}

func (sub *subscription) deliver(t Theme) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if !sub.cancelled {
		sub.fn(t)
	}
}

var _ Watcher = (*Signal)(nil)

// NewSignal returns a Signal with no reported scheme.
func NewSignal() *Signal {
	return &Signal{subs: make(map[int]*subscription)}
}

// Current implements Watcher.
func (s *Signal) Current() (Theme, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.known
}

// OnChange implements Watcher.
func (s *Signal) OnChange(fn func(Theme)) func() {
	sub := &subscription{fn: fn}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = sub
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()

			sub.mu.Lock()
			sub.cancelled = true
			sub.mu.Unlock()
		})
	}
}

// Set records the host's scheme and notifies subscribers when it changed.
// Invalid themes are ignored.
func (s *Signal) Set(t Theme) {
	if !t.Valid() {
		return
	}

	s.mu.Lock()
	if s.known && s.current == t {
		s.mu.Unlock()
		return
	}
	s.current = t
	s.known = true
	subs := make([]*subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	// A subscriber may cancel another one mid-dispatch.
	for _, sub := range subs {
		sub.deliver(t)
	}
}

// Clear forgets the reported scheme without notifying.
func (s *Signal) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = ""
	s.known = false
}

// Subscribers returns the number of live registrations.
func (s *Signal) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
