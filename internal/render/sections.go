package render

import (
	"html/template"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/icons"
	"github.com/Zachkp/portfolio/internal/media"
)

// Section ids, also the template names.
const (
	NavID        = "nav"
	HomeID       = "home"
	AboutID      = "about"
	SkillsID     = "skills"
	ExperienceID = "experience"
	WorkID       = "work"
	ContactID    = "contact"
)

// Env is the read-only context every builder gets next to its sub-tree.
type Env struct {
	Icons *icons.Registry
	// Checker, when set, swaps unreachable local images to their
	// placeholder at render time.
	Checker media.Checker
	// ThemeEndpoint is where the toggle posts; empty for static output.
	ThemeEndpoint string
}

func (e Env) image(src, alt string, p media.Placeholder) *media.Image {
	img := media.NewImage(src, alt, p)
	img.Check(e.Checker)
	return img
}

func (e Env) glyph(key icons.Key, class string) template.HTML {
	icon, ok := e.Icons.Resolve(string(key))
	if !ok {
		return ""
	}
	return icon.SVG(class)
}

// Spec binds a section id to its builder.
type Spec struct {
	ID    string
	Build func(doc *content.Document, env Env) (view any, ok bool)
}

// Sections lists the page regions in their fixed order.
func Sections() []Spec {
	return []Spec{
		{ID: NavID, Build: navSection},
		{ID: HomeID, Build: homeSection},
		{ID: AboutID, Build: aboutSection},
		{ID: SkillsID, Build: skillsSection},
		{ID: ExperienceID, Build: experienceSection},
		{ID: WorkID, Build: workSection},
		{ID: ContactID, Build: contactSection},
	}
}

func navSection(d *content.Document, e Env) (any, bool) {
	v := BuildNav(d, e)
	return v, v != nil
}

func homeSection(d *content.Document, e Env) (any, bool) {
	v := BuildHome(d.Home, e)
	return v, v != nil
}

func aboutSection(d *content.Document, e Env) (any, bool) {
	v := BuildAbout(d.About, e)
	return v, v != nil
}

func skillsSection(d *content.Document, e Env) (any, bool) {
	v := BuildSkills(d.Skills, e)
	return v, v != nil
}

func experienceSection(d *content.Document, e Env) (any, bool) {
	v := BuildExperience(d.Experience, e)
	return v, v != nil
}

func workSection(d *content.Document, e Env) (any, bool) {
	v := BuildWork(d.Projects, e)
	return v, v != nil
}

func contactSection(d *content.Document, e Env) (any, bool) {
	v := BuildContact(d, e)
	return v, v != nil
}

func badge(given, fallback string) string {
	if strings.TrimSpace(given) != "" {
		return given
	}
	return fallback
}

// titleBadge derives a badge from a section id ("skills" -> "Skills").
func titleBadge(id string) string {
	return cases.Title(language.English).String(id)
}

// SocialView is a social link whose icon resolved.
type SocialView struct {
	Icon  template.HTML
	Href  string
	Label string
	Color string
}

// ResolveSocials keeps document order and drops exactly the links whose
// icon key is not registered.
func ResolveSocials(reg *icons.Registry, links []content.SocialLink) []SocialView {
	out := make([]SocialView, 0, len(links))
	for _, l := range links {
		icon, ok := reg.Resolve(l.IconKey)
		if !ok {
			continue
		}
		out = append(out, SocialView{
			Icon:  icon.SVG("social-icon"),
			Href:  l.Href,
			Label: l.Label,
			Color: l.Color,
		})
	}
	return out
}

func richLines(lines []string) []template.HTML {
	out := make([]template.HTML, 0, len(lines))
	for _, l := range lines {
		out = append(out, rich(l))
	}
	return out
}
