// Package nav models the site navigation bar: its static configuration,
// which section a route belongs to, and the open/closed state of the mobile
// menu and dropdowns.
package nav

// State is a snapshot of the navigation bar.
type State struct {
	MobileMenuOpen bool
	OpenDropdown   string // empty when no dropdown is open
	ActiveSection  Section
	Path           string
}

// Target describes where a pointer interaction landed: the ids of the
// target element and its ancestors, innermost first.
type Target []string

// Within reports whether the target lies inside the element with the given id.
func (t Target) Within(id string) bool {
	for _, el := range t {
		if el == id {
			return true
		}
	}
	return false
}

// Machine tracks the navigation bar of a single page instance. It is not
// safe for concurrent use; its owner serializes events.
type Machine struct {
	items       []Item
	dropdowns   map[string]bool
	containerID string
	state       State
}

// NewMachine creates a closed navigation bar. containerID is the id of the
// element wrapping the bar; interactions outside it close all menus.
func NewMachine(items []Item, containerID string) *Machine {
	dropdowns := make(map[string]bool)
	for _, it := range items {
		if it.Kind == KindDropdown {
			dropdowns[it.ID] = true
		}
	}
	return &Machine{
		items:       items,
		dropdowns:   dropdowns,
		containerID: containerID,
	}
}

// State returns the current snapshot.
func (m *Machine) State() State { return m.state }

// Items returns the configured navigation items.
func (m *Machine) Items() []Item { return m.items }

// ContainerID returns the id of the navigation container element.
func (m *Machine) ContainerID() string { return m.containerID }

// ToggleMobileMenu opens or closes the mobile menu. Either way, any open
// dropdown is closed.
func (m *Machine) ToggleMobileMenu() {
	m.state.MobileMenuOpen = !m.state.MobileMenuOpen
	m.state.OpenDropdown = ""
}

// ToggleDropdown closes the dropdown if it is open, otherwise opens it in
// place of any other. Ids that do not name a dropdown are ignored.
func (m *Machine) ToggleDropdown(id string) {
	if !m.dropdowns[id] {
		return
	}
	if m.state.OpenDropdown == id {
		m.state.OpenDropdown = ""
		return
	}
	m.state.OpenDropdown = id
}

// Hover opens a dropdown while the pointer rests on it.
func (m *Machine) Hover(id string) {
	if !m.dropdowns[id] {
		return
	}
	m.state.OpenDropdown = id
}

// Leave closes a hovered dropdown. Dropdowns expanded inside the open mobile
// menu stay open.
func (m *Machine) Leave() {
	if m.state.MobileMenuOpen {
		return
	}
	m.state.OpenDropdown = ""
}

// OnRouteChange closes every menu and recomputes the active section.
func (m *Machine) OnRouteChange(path string) {
	m.state = State{
		ActiveSection: SectionFor(path),
		Path:          path,
	}
}

// OnOutsideInteraction closes every menu when target lies outside the
// navigation container.
func (m *Machine) OnOutsideInteraction(target Target) {
	if target.Within(m.containerID) {
		return
	}
	m.state.MobileMenuOpen = false
	m.state.OpenDropdown = ""
}

// IsActiveLink reports whether path is the current route.
func (m *Machine) IsActiveLink(path string) bool {
	return m.state.Path == path
}
