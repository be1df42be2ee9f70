// Package media attaches deterministic placeholder fallbacks to images.
package media

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const placeholderHost = "https://placehold.co"

// Placeholder describes the stand-in image for one slot.
type Placeholder struct {
	Width      int
	Height     int
	Background string
	Foreground string
	Label      string
}

// URL is stable for a given Placeholder.
func (p Placeholder) URL() string {
	return fmt.Sprintf("%s/%dx%d/%s/%s?text=%s",
		placeholderHost, p.Width, p.Height, p.Background, p.Foreground, url.QueryEscape(p.Label))
}

// Slot placeholders.
var (
	ProfilePlaceholder = Placeholder{Width: 300, Height: 400, Background: "374151", Foreground: "FFFFFF", Label: "Image Load Failed"}
	AboutPlaceholder   = Placeholder{Width: 400, Height: 500, Background: "374151", Foreground: "FFFFFF", Label: "Profile Image"}
	SkillPlaceholder   = Placeholder{Width: 64, Height: 64, Background: "E5E7EB", Foreground: "6B7280", Label: "Icon"}
	LogoPlaceholder    = Placeholder{Width: 80, Height: 20, Background: "F0FDF4", Foreground: "10B981", Label: "Logo"}
	ProjectPlaceholder = Placeholder{Width: 600, Height: 400, Background: "E5E7EB", Foreground: "6B7280", Label: "Project Image"}
)

// Image is an <img> source with its fallback. Fail swaps Src to the
// fallback at most once; the placeholder itself is assumed to load.
type Image struct {
	Src      string
	Alt      string
	Fallback string
	failed   bool
}

func NewImage(src, alt string, p Placeholder) *Image {
	img := &Image{Src: src, Alt: alt, Fallback: p.URL()}
	if strings.TrimSpace(src) == "" {
		img.Fail()
	}
	return img
}

// Fail reports whether this call performed the substitution.
func (i *Image) Fail() bool {
	if i.failed {
		return false
	}
	i.failed = true
	i.Src = i.Fallback
	return true
}

func (i *Image) Failed() bool {
	return i.failed
}

// Checker decides whether a source will load. Sources it cannot judge are
// reported as reachable and left to the browser fallback.
type Checker interface {
	Reachable(src string) bool
}

// Check applies c to the image, substituting the fallback when c says the
// source cannot load.
func (i *Image) Check(c Checker) {
	if c == nil || i.failed {
		return
	}
	if !c.Reachable(i.Src) {
		i.Fail()
	}
}

// DirChecker resolves site-local paths under a URL prefix against a
// directory on disk. Remote URLs are always reachable.
type DirChecker struct {
	Prefix string
	Dir    string
}

func (d DirChecker) Reachable(src string) bool {
	u, err := url.Parse(src)
	if err != nil {
		return false
	}
	if u.Scheme != "" || u.Host != "" {
		return true
	}
	if !strings.HasPrefix(u.Path, d.Prefix) {
		return true
	}
	rel := strings.TrimPrefix(u.Path, d.Prefix)
	full := filepath.Join(d.Dir, filepath.FromSlash(filepath.Clean("/"+rel)))
	info, err := os.Stat(full)
	return err == nil && !info.IsDir()
}
