package nav

import "strings"

// Section is the top-level navigation entry a route belongs to.
type Section string

const (
	SectionNone          Section = ""
	SectionHome          Section = "home"
	SectionHooks         Section = "hooks"
	SectionWorkshops     Section = "workshops"
	SectionDesignPattern Section = "designPattern"
	SectionAbout         Section = "about"
)

// SectionFor maps a normalized, case-sensitive path to its section.
// Unknown paths map to SectionNone.
func SectionFor(path string) Section {
	switch {
	case path == "/":
		return SectionHome
	case strings.HasPrefix(path, "/use"):
		return SectionHooks
	case strings.HasPrefix(path, "/workshops"):
		return SectionWorkshops
	case strings.HasPrefix(path, "/designPattern"):
		return SectionDesignPattern
	case path == "/about":
		return SectionAbout
	default:
		return SectionNone
	}
}
