package render

import (
	"html/template"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/icons"
	"github.com/Zachkp/portfolio/internal/theme"
)

type NavView struct {
	LogoName  string
	Links     []content.NavLink
	CVPath    string
	Menu      *Menu
	MenuIcon  template.HTML
	CloseIcon template.HTML

	sun, moon template.HTML
	endpoint  string
}

// ThemeToggle is the control for switching away from the current theme.
type ThemeToggle struct {
	Icon     template.HTML
	AltIcon  template.HTML
	Label    string
	Endpoint string
}

// ToggleFor offers the opposite of current.
func (v *NavView) ToggleFor(current theme.Theme) ThemeToggle {
	t := ThemeToggle{Endpoint: v.endpoint, Label: "Switch to " + current.Opposite().String() + " theme"}
	if current == theme.Dark {
		t.Icon, t.AltIcon = v.sun, v.moon
	} else {
		t.Icon, t.AltIcon = v.moon, v.sun
	}
	return t
}

// BuildNav always yields a view: the header carries the theme toggle even
// when the document has no links.
func BuildNav(doc *content.Document, env Env) *NavView {
	v := &NavView{
		Links:     doc.NavLinks,
		CVPath:    doc.CVPath,
		Menu:      &Menu{},
		MenuIcon:  env.glyph(icons.Menu, ""),
		CloseIcon: env.glyph(icons.Close, ""),
		sun:       env.glyph(icons.Sun, "theme-icon"),
		moon:      env.glyph(icons.Moon, "theme-icon"),
		endpoint:  env.ThemeEndpoint,
	}
	if doc.Home != nil {
		v.LogoName = doc.Home.LogoName
	}
	return v
}
