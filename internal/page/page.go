// Package page composes the navigation and content sections into one page
// and owns that page's theme state.
package page

import (
	"errors"
	"html/template"
	"io"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/icons"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/media"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/internal/theme"
)

var ErrNoDocument = errors.New("page: no content document")

const defaultTitle = "Portfolio"

type Options struct {
	Theme         theme.Theme
	Motion        bool
	Checker       media.Checker
	ThemeEndpoint string
	StaticPrefix  string
	Logger        *logger.Logger
}

// Page is one mounted composition. It is single-owner: build one per
// request or per static build.
type Page struct {
	title        string
	staticPrefix string
	renderer     *render.Renderer
	state        *theme.State
	motion       render.Motion
	log          *logger.Logger
	sections     []*mounted
}

type mounted struct {
	id          string
	view        any
	html        template.HTML
	unsubscribe func()
}

// Compose mounts every present section in fixed order and renders it once.
// Each mounted section re-renders synchronously whenever the theme toggles.
func Compose(doc *content.Document, reg *icons.Registry, r *render.Renderer, opts Options) (*Page, error) {
	if doc == nil {
		return nil, ErrNoDocument
	}

	p := &Page{
		title:        defaultTitle,
		staticPrefix: opts.StaticPrefix,
		renderer:     r,
		state:        theme.NewState(opts.Theme),
		motion:       render.Motion{Enabled: opts.Motion},
		log:          opts.Logger,
	}
	if p.staticPrefix == "" {
		p.staticPrefix = "/static/"
	}
	if doc.Home != nil && doc.Home.Name != "" {
		p.title = doc.Home.Name
	}

	env := render.Env{Icons: reg, Checker: opts.Checker, ThemeEndpoint: opts.ThemeEndpoint}
	for _, spec := range render.Sections() {
		view, ok := spec.Build(doc, env)
		if !ok {
			continue
		}
		m := &mounted{id: spec.ID, view: view}
		html, err := p.render(m, p.state.Get())
		if err != nil {
			p.Close()
			return nil, err
		}
		m.html = html
		m.unsubscribe = p.state.Subscribe(func(t theme.Theme) { p.rerender(m, t) })
		p.sections = append(p.sections, m)
	}
	return p, nil
}

func (p *Page) render(m *mounted, t theme.Theme) (template.HTML, error) {
	return p.renderer.Section(m.id, render.SectionData{View: m.view, Theme: t, Motion: p.motion})
}

// rerender keeps the previous markup when rendering fails.
func (p *Page) rerender(m *mounted, t theme.Theme) {
	html, err := p.render(m, t)
	if err != nil {
		p.log.Error(err, "section re-render failed", map[string]any{"section": m.id, "theme": t.String()})
		return
	}
	m.html = html
}

// Theme is the page's single theme state.
func (p *Page) Theme() *theme.State {
	return p.state
}

// Sections returns the ids of mounted sections in page order.
func (p *Page) Sections() []string {
	ids := make([]string, 0, len(p.sections))
	for _, m := range p.sections {
		ids = append(ids, m.id)
	}
	return ids
}

// Section returns the current markup of one mounted section.
func (p *Page) Section(id string) (template.HTML, bool) {
	for _, m := range p.sections {
		if m.id == id {
			return m.html, true
		}
	}
	return "", false
}

// ToggleMenu flips the navigation drawer and re-renders the navigation.
// It reports false when the page has no navigation.
func (p *Page) ToggleMenu() bool {
	return p.withMenu((*render.Menu).Toggle)
}

func (p *Page) CloseMenu() bool {
	return p.withMenu((*render.Menu).Close)
}

func (p *Page) withMenu(fn func(*render.Menu)) bool {
	for _, m := range p.sections {
		nav, ok := m.view.(*render.NavView)
		if !ok {
			continue
		}
		fn(nav.Menu)
		p.rerender(m, p.state.Get())
		return true
	}
	return false
}

func (p *Page) Title() string {
	return p.title
}

// SectionData is the input the section template named id renders from,
// for callers that execute the template themselves.
func (p *Page) SectionData(id string) (render.SectionData, bool) {
	for _, m := range p.sections {
		if m.id == id {
			return render.SectionData{View: m.view, Theme: p.state.Get(), Motion: p.motion}, true
		}
	}
	return render.SectionData{}, false
}

// LayoutData is the shell around the current section markup.
func (p *Page) LayoutData() render.LayoutData {
	parts := make([]template.HTML, 0, len(p.sections))
	for _, m := range p.sections {
		parts = append(parts, m.html)
	}
	return render.LayoutData{
		Title:        p.title,
		Theme:        p.state.Get(),
		StaticPrefix: p.staticPrefix,
		Sections:     parts,
	}
}

// WriteTo renders the full document.
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := p.renderer.Layout(cw, p.LayoutData())
	return cw.n, err
}

// Close unmounts every section from the theme state.
func (p *Page) Close() {
	for _, m := range p.sections {
		if m.unsubscribe != nil {
			m.unsubscribe()
			m.unsubscribe = nil
		}
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
