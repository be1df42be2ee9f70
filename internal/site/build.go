// Package site writes the composed page to disk as a static site and
// rebuilds it when its inputs change.
package site

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/icons"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/media"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/web"
)

const (
	staticDir   = "static"
	imagesDir   = "images"
	sectionsDir = "sections"
)

type Options struct {
	Document  *content.Document
	Icons     *icons.Registry
	Renderer  *render.Renderer
	ImagesDir string
	OutputDir string
	Theme     theme.Theme
	Motion    bool
	Logger    *logger.Logger
}

// Result summarises one build.
type Result struct {
	Sections []string
	Files    int
}

// Build writes index.html, one fragment per section under sections/, the
// embedded static assets and a copy of the images directory.
func Build(ctx context.Context, opts Options) (*Result, error) {
	if opts.OutputDir == "" {
		return nil, errors.New("site: output directory is required")
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

	log := opts.Logger.Component("site")
	var checker media.Checker
	if opts.ImagesDir != "" {
		checker = media.DirChecker{Prefix: "/" + imagesDir + "/", Dir: opts.ImagesDir}
	}
	p, err := page.Compose(opts.Document, opts.Icons, opts.Renderer, page.Options{
		Theme:        opts.Theme,
		Motion:       opts.Motion,
		Checker:      checker,
		StaticPrefix: staticDir + "/",
		Logger:       log,
	})
	if err != nil {
		return nil, err
	}
	defer p.Close()

	res := &Result{Sections: p.Sections()}
	out := opts.OutputDir
	if err := os.MkdirAll(filepath.Join(out, sectionsDir), 0o755); err != nil {
		return nil, fmt.Errorf("site: create output dir: %w", err)
	}

	if err := writeFile(filepath.Join(out, "index.html"), func(w io.Writer) error {
		_, err := p.WriteTo(w)
		return err
	}); err != nil {
		return nil, err
	}
	res.Files++

	for _, id := range res.Sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		html, _ := p.Section(id)
		if err := os.WriteFile(filepath.Join(out, sectionsDir, id+".html"), []byte(html), 0o644); err != nil {
			return nil, fmt.Errorf("site: write section %s: %w", id, err)
		}
		res.Files++
	}

	n, err := copyTree(ctx, web.Static(), filepath.Join(out, staticDir))
	if err != nil {
		return nil, fmt.Errorf("site: copy static assets: %w", err)
	}
	res.Files += n

	if opts.ImagesDir != "" {
		if _, statErr := os.Stat(opts.ImagesDir); statErr == nil {
			n, err := copyTree(ctx, os.DirFS(opts.ImagesDir), filepath.Join(out, imagesDir))
			if err != nil {
				return nil, fmt.Errorf("site: copy images: %w", err)
			}
			res.Files += n
		} else {
			log.Warn("images directory not found, skipping", map[string]any{"dir": opts.ImagesDir})
		}
	}

	log.Info("site built", map[string]any{"output": out, "files": res.Files, "sections": res.Sections})
	return res, nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("site: create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("site: write %s: %w", path, err)
	}
	return f.Close()
}

func copyTree(ctx context.Context, src fs.FS, dst string) (int, error) {
	count := 0
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(src, path, target); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}

func copyFile(src fs.FS, path, target string) error {
	in, err := src.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()
	return writeFile(target, func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
}
