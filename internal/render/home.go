package render

import (
	"html/template"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/icons"
	"github.com/Zachkp/portfolio/internal/media"
	"github.com/Zachkp/portfolio/internal/richtext"
)

func rich(s string) template.HTML {
	return richtext.Render(s)
}

type HomeView struct {
	Greeting     string
	Name         string
	Description  string
	Location     string
	LocationIcon template.HTML
	Status       string
	StatusColor  string
	Image        *media.Image
	Socials      []SocialView
}

func BuildHome(h *content.Home, env Env) *HomeView {
	if h == nil {
		return nil
	}
	v := &HomeView{
		Greeting:    h.Greeting,
		Name:        h.Name,
		Description: h.Description,
		Location:    h.Location,
		Status:      h.Status,
		StatusColor: h.StatusColor,
		Socials:     ResolveSocials(env.Icons, h.Socials),
	}
	if v.Location != "" {
		v.LocationIcon = env.glyph(icons.Environment, "meta-icon")
	}
	if h.ProfileImagePath != "" {
		v.Image = env.image(h.ProfileImagePath, h.Name+"'s Profile", media.ProfilePlaceholder)
	}
	return v
}

type AboutView struct {
	Badge          string
	Title          string
	Image          *media.Image
	Paragraphs     []template.HTML
	QuickBitsTitle template.HTML
	QuickBits      []string
	ClosingText    template.HTML
}

func BuildAbout(a *content.About, env Env) *AboutView {
	if a == nil {
		return nil
	}
	v := &AboutView{
		Badge:      badge(a.Badge, "About me"),
		Title:      a.Title,
		Paragraphs: richLines(a.Paragraphs),
		QuickBits:  a.QuickBits,
	}
	if a.ImagePath != "" {
		v.Image = env.image(a.ImagePath, "Profile", media.AboutPlaceholder)
	}
	if a.QuickBitsTitle != "" {
		v.QuickBitsTitle = rich(a.QuickBitsTitle)
	}
	if a.ClosingText != "" {
		v.ClosingText = rich(a.ClosingText)
	}
	return v
}
