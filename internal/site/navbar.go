package site

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/ziadkadry99/react-guide/internal/nav"
	"github.com/ziadkadry99/react-guide/internal/session"
)

// navbarHTML renders the navigation bar for view. When static is set the
// toggles are plain buttons handled entirely by the page script.
func navbarHTML(view session.View, siteTitle string, static bool) template.HTML {
	esc := template.HTMLEscapeString
	ret := esc(view.Path)

	var b strings.Builder
	menuOpen := classIf(view.MobileMenuOpen, " menu-open")
	fmt.Fprintf(&b, `<nav class="navbar%s" id="%s">`+"\n", menuOpen, esc(view.ContainerID))
	b.WriteString(`<div class="navbar-container">` + "\n")
	fmt.Fprintf(&b, `<a href="%s" class="navbar-logo">%s</a>`+"\n", navHref("/"), esc(siteTitle))

	fmt.Fprintf(&b, `<ul class="nav-menu%s" id="nav-menu">`+"\n", classIf(view.MobileMenuOpen, " active"))
	for _, it := range view.Items {
		sectionActive := classIf(nav.Section(it.ID) == view.ActiveSection, " active")
		if it.Kind == nav.KindLink {
			fmt.Fprintf(&b, `<li class="nav-item" id="item-%s"><a href="%s" class="nav-link%s">%s</a></li>`+"\n",
				esc(it.ID), navHref(it.Path), classIf(view.IsActiveLink(it.Path), " active"), esc(it.Label))
			continue
		}

		open := classIf(view.OpenDropdown == it.ID, " open")
		fmt.Fprintf(&b, `<li class="nav-item dropdown%s" id="dropdown-%s" data-dropdown="%s">`+"\n", open, esc(it.ID), esc(it.ID))
		toggle := fmt.Sprintf(`<button type="submit" class="nav-link dropdown-toggle%s" data-toggle-dropdown="%s">%s <span class="dropdown-icon">&#9662;</span></button>`,
			sectionActive, esc(it.ID), esc(it.Label))
		writeControl(&b, "/nav/dropdown/"+esc(it.ID), ret, toggle, static)
		b.WriteString(`<div class="dropdown-content">` + "\n")
		for _, child := range it.Children {
			fmt.Fprintf(&b, `<a href="%s" class="dropdown-link%s">%s</a>`+"\n",
				navHref(child.Path), classIf(view.IsActiveLink(child.Path), " active"), esc(child.Label))
		}
		b.WriteString("</div>\n</li>\n")
	}
	b.WriteString("</ul>\n")

	writeControl(&b, "/theme/toggle", ret,
		`<button type="submit" class="theme-toggle" data-toggle-theme aria-label="Toggle theme"><span class="sun-icon">&#9728;</span><span class="moon-icon">&#9790;</span></button>`,
		static)
	writeControl(&b, "/nav/menu", ret,
		fmt.Sprintf(`<button type="submit" class="menu-icon%s" data-toggle-menu aria-label="Toggle menu"><span class="bar"></span><span class="bar"></span><span class="bar"></span></button>`,
			classIf(view.MobileMenuOpen, " open")),
		static)

	b.WriteString("</div>\n</nav>\n")
	return template.HTML(b.String())
}

// writeControl wraps a toggle button in a form posting back to action so
// the bar works without script.
func writeControl(b *strings.Builder, action, ret, button string, static bool) {
	if static {
		b.WriteString(button + "\n")
		return
	}
	fmt.Fprintf(b, `<form method="post" action="%s" class="nav-form"><input type="hidden" name="return" value="%s">%s</form>`+"\n",
		action, ret, button)
}

// navHref marks a link as a navigation activation.
func navHref(p string) string {
	return template.HTMLEscapeString(p) + "?" + viaParam + "=" + viaNav
}

func classIf(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
