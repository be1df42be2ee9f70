package render

import (
	"html/template"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/icons"
	"github.com/Zachkp/portfolio/internal/media"
)

type SkillsView struct {
	Badge string
	Title string
	Items []SkillView
}

type SkillView struct {
	Name string
	Icon *media.Image
}

func BuildSkills(s *content.Skills, env Env) *SkillsView {
	if s == nil {
		return nil
	}
	v := &SkillsView{Badge: badge(s.Badge, titleBadge(SkillsID)), Title: s.Title}
	for _, item := range s.List {
		v.Items = append(v.Items, SkillView{
			Name: item.Name,
			Icon: env.image(item.IconPath, item.Name+" icon", media.SkillPlaceholder),
		})
	}
	return v
}

type ExperienceView struct {
	Badge string
	Title string
	Items []ExperienceCard
}

type ExperienceCard struct {
	Company  string
	Role     string
	Duration string
	Logo     *media.Image
	Points   []template.HTML
}

func BuildExperience(e *content.Experience, env Env) *ExperienceView {
	if e == nil {
		return nil
	}
	v := &ExperienceView{Badge: badge(e.Badge, titleBadge(ExperienceID)), Title: e.Title}
	for _, item := range e.List {
		card := ExperienceCard{
			Company:  item.Company,
			Role:     item.Role,
			Duration: item.Duration,
			Points:   richLines(item.DescriptionPoints),
		}
		if item.LogoPath != "" {
			card.Logo = env.image(item.LogoPath, item.Company+" logo", media.LogoPlaceholder)
		}
		v.Items = append(v.Items, card)
	}
	return v
}

type WorkView struct {
	Badge string
	Title string
	Items []ProjectCard
}

type ProjectCard struct {
	Title        string
	Description  string
	Image        *media.Image
	Technologies []string
	ProjectLink  string
	LiveLink     string
	LinkIcon     template.HTML
	// ImageFirst alternates with the card index so images zig-zag.
	ImageFirst bool
}

func BuildWork(p *content.Projects, env Env) *WorkView {
	if p == nil {
		return nil
	}
	v := &WorkView{Badge: badge(p.Badge, "Personal Projects"), Title: p.Title}
	link := env.glyph(icons.Export, "link-icon")
	for i, item := range p.List {
		card := ProjectCard{
			Title:        item.Title,
			Description:  item.Description,
			Technologies: item.Technologies,
			ProjectLink:  item.ProjectLink,
			LiveLink:     item.LiveLink,
			LinkIcon:     link,
			ImageFirst:   i%2 == 0,
		}
		if item.ImagePath != "" {
			card.Image = env.image(item.ImagePath, item.Title+" project screenshot", media.ProjectPlaceholder)
		}
		v.Items = append(v.Items, card)
	}
	return v
}
