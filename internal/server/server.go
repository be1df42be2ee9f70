// Package server exposes the composed page over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/icons"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/media"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/prefs"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/web"
)

const (
	ToggleEndpoint = "/theme/toggle"
	imagesPrefix   = "/images/"
	shutdownGrace  = 5 * time.Second
)

type Options struct {
	Document     *content.Document
	Icons        *icons.Registry
	Renderer     *render.Renderer
	Store        prefs.Store
	ImagesDir    string
	DefaultTheme theme.Theme
	Motion       bool
	Mode         string
	Logger       *logger.Logger
}

type Server struct {
	engine   *gin.Engine
	doc      atomic.Pointer[content.Document]
	icons    *icons.Registry
	renderer *render.Renderer
	store    prefs.Store
	checker  media.Checker
	theme    theme.Theme
	motion   bool
	log      *logger.Logger
}

func New(opts Options) (*Server, error) {
	if opts.Document == nil {
		return nil, page.ErrNoDocument
	}
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}
	if opts.Icons == nil {
		opts.Icons = icons.Default()
	}
	if opts.Renderer == nil {
		r, err := render.NewRenderer()
		if err != nil {
			return nil, err
		}
		opts.Renderer = r
	}
	if opts.Store == nil {
		opts.Store = prefs.NewMemoryStore()
	}

	s := &Server{
		icons:    opts.Icons,
		renderer: opts.Renderer,
		store:    opts.Store,
		theme:    opts.DefaultTheme,
		motion:   opts.Motion,
		log:      opts.Logger.Component("server"),
	}
	if opts.ImagesDir != "" {
		s.checker = media.DirChecker{Prefix: imagesPrefix, Dir: opts.ImagesDir}
	}
	s.doc.Store(opts.Document)

	r := gin.New()
	r.SetHTMLTemplate(s.renderer.Template())
	r.Use(gin.Recovery(), requestLogger(s.log), visitorCookie())

	if opts.ImagesDir != "" {
		r.Static("/images", opts.ImagesDir)
	}
	r.StaticFS("/static", http.FS(web.Static()))

	// Full page
	r.GET("/", s.handlePage)

	// One section as an HTML fragment
	r.GET("/sections/:id", s.handleSection)

	r.POST(ToggleEndpoint, s.handleToggle)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.engine = r
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// SetDocument swaps the document used for subsequent requests.
func (s *Server) SetDocument(doc *content.Document) {
	if doc == nil {
		return
	}
	s.doc.Store(doc)
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", map[string]any{"addr": addr})
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

func (s *Server) compose(t theme.Theme) (*page.Page, error) {
	return page.Compose(s.doc.Load(), s.icons, s.renderer, page.Options{
		Theme:         t,
		Motion:        s.motion,
		Checker:       s.checker,
		ThemeEndpoint: ToggleEndpoint,
		Logger:        s.log,
	})
}
