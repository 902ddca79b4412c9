package session

import (
	"errors"
	"fmt"

	"github.com/ziadkadry99/react-guide/internal/nav"
	"github.com/ziadkadry99/react-guide/internal/theme"
)

// EventType names an interaction reported by the page.
type EventType string

const (
	EventToggleTheme    EventType = "toggle-theme"
	EventToggleMenu     EventType = "toggle-menu"
	EventToggleDropdown EventType = "toggle-dropdown"
	EventHover          EventType = "hover"
	EventLeave          EventType = "leave"
	EventPointerDown    EventType = "pointer-down"
	EventSystemTheme    EventType = "system-theme"
	EventNavigate       EventType = "navigate"
	EventLink           EventType = "link"
)

var (
	// ErrUnknownEvent is returned for event types the session does not handle.
	ErrUnknownEvent = errors.New("unknown event type")
	// ErrInvalidEvent is returned when an event is missing or has bad fields.
	ErrInvalidEvent = errors.New("invalid event")
	// ErrClosed is returned for events sent to a torn-down session.
	ErrClosed = errors.New("session closed")
)

// Event is one interaction reported by the page script.
type Event struct {
	Type   EventType `json:"type"`
	ID     string    `json:"id,omitempty"`
	Path   string    `json:"path,omitempty"`
	Target []string  `json:"target,omitempty"`
	Value  string    `json:"value,omitempty"`
}

// Dispatch applies ev as a single turn and returns the resulting state. A
// rejected event leaves the session unchanged.
func (s *Session) Dispatch(ev Event) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Snapshot{}, ErrClosed
	}
	if err := s.applyLocked(ev); err != nil {
		return Snapshot{}, err
	}
	return s.snapshotLocked(), nil
}

func (s *Session) applyLocked(ev Event) error {
	switch ev.Type {
	case EventToggleTheme:
		s.theme.Toggle()
	case EventToggleMenu:
		s.nav.ToggleMobileMenu()
	case EventToggleDropdown:
		if ev.ID == "" {
			return fmt.Errorf("%w: %s requires an id", ErrInvalidEvent, ev.Type)
		}
		s.nav.ToggleDropdown(ev.ID)
	case EventHover:
		if ev.ID == "" {
			return fmt.Errorf("%w: %s requires an id", ErrInvalidEvent, ev.Type)
		}
		s.nav.Hover(ev.ID)
	case EventLeave:
		s.nav.Leave()
	case EventPointerDown:
		s.nav.OnOutsideInteraction(nav.Target(ev.Target))
	case EventSystemTheme:
		t, err := theme.Parse(ev.Value)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidEvent, err)
		}
		s.signal.Set(t)
	case EventNavigate:
		if ev.Path == "" {
			return fmt.Errorf("%w: %s requires a path", ErrInvalidEvent, ev.Type)
		}
		s.nav.OnRouteChange(ev.Path)
	case EventLink:
		if ev.Path == "" {
			return fmt.Errorf("%w: %s requires a path", ErrInvalidEvent, ev.Type)
		}
		if s.scroll.OnLinkActivated(ev.Path) {
			s.nav.OnRouteChange(ev.Path)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
	return nil
}
