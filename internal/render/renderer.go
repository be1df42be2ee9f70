// Package render turns sub-trees of the content document into HTML regions.
//
// Every section has a view builder (pure: document in, view out) and a
// template in the embedded web/templates directory. A builder returning no
// view suppresses the whole region.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/web"
)

// Renderer executes the embedded templates.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("portfolio").ParseFS(web.FS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Template is the parsed set. The server installs it as gin's HTML
// renderer; section and layout names are the template names.
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// SectionData is what every section template receives.
type SectionData struct {
	View   any
	Theme  theme.Theme
	Motion Motion
}

// Section renders the template named after the section id.
func (r *Renderer) Section(id string, data SectionData) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, id, data); err != nil {
		return "", fmt.Errorf("render section %s: %w", id, err)
	}
	return template.HTML(buf.String()), nil
}

// LayoutData is the page shell around the rendered sections.
type LayoutData struct {
	Title        string
	Theme        theme.Theme
	StaticPrefix string
	Sections     []template.HTML
}

func (r *Renderer) Layout(w io.Writer, data LayoutData) error {
	if err := r.tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("render layout: %w", err)
	}
	return nil
}
