package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/theme"
)

const (
	themeCookie    = "theme"
	cookieMaxAge   = 3600 * 24 * 365
	layoutTemplate = "layout"
)

// visitorTheme prefers the stored preference, then the theme cookie, then
// the configured default.
func (s *Server) visitorTheme(c *gin.Context) theme.Theme {
	if t, ok, err := s.store.Get(c.Request.Context(), visitorID(c)); err != nil {
		s.log.Warn("theme preference lookup failed", map[string]any{"error": err.Error()})
	} else if ok {
		return t
	}
	if raw, err := c.Cookie(themeCookie); err == nil {
		if t, err := theme.ParseTheme(raw); err == nil {
			return t
		}
	}
	return s.theme
}

func (s *Server) handlePage(c *gin.Context) {
	p, err := s.compose(s.visitorTheme(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	defer p.Close()
	applyMenu(c, p)
	c.HTML(http.StatusOK, layoutTemplate, p.LayoutData())
}

func (s *Server) handleSection(c *gin.Context) {
	p, err := s.compose(s.visitorTheme(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	defer p.Close()
	applyMenu(c, p)

	id := c.Param("id")
	data, ok := p.SectionData(id)
	if !ok {
		c.String(http.StatusNotFound, "section not found")
		return
	}
	c.HTML(http.StatusOK, id, data)
}

// handleToggle flips the visitor's theme. HTMX callers get the re-rendered
// page, script callers an empty 204, plain form posts a redirect home.
func (s *Server) handleToggle(c *gin.Context) {
	p, err := s.compose(s.visitorTheme(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	defer p.Close()

	p.Theme().Toggle()
	next := p.Theme().Get()

	if err := s.store.Set(c.Request.Context(), visitorID(c), next); err != nil {
		s.log.Error(err, "could not store theme preference", nil)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(themeCookie, next.String(), cookieMaxAge, "/", "", false, false)

	switch {
	case c.GetHeader("HX-Request") == "true":
		c.HTML(http.StatusOK, layoutTemplate, p.LayoutData())
	case c.GetHeader("X-Requested-With") != "":
		c.Status(http.StatusNoContent)
	default:
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// applyMenu opens the drawer for ?menu=open so the menu works without
// scripts.
func applyMenu(c *gin.Context, p *page.Page) {
	if c.Query("menu") == "open" {
		p.ToggleMenu()
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	s.log.Error(err, "page composition failed", map[string]any{"path": c.Request.URL.Path})
	c.String(http.StatusInternalServerError, "Sorry, the page could not be rendered.")
}
