// Package icons maps symbolic icon keys from the content document to inline
// SVG glyphs.
package icons

import (
	"fmt"
	"html/template"
	"sort"
)

// Key identifies a glyph. The set is closed: only the constants below exist
// in the registry.
type Key string

const (
	GitHub      Key = "GithubOutlined"
	Twitter     Key = "TwitterOutlined"
	LinkedIn    Key = "LinkedinOutlined"
	Medium      Key = "MediumOutlined"
	Environment Key = "EnvironmentOutlined"
	Mail        Key = "MailOutlined"
	Phone       Key = "PhoneOutlined"
	Copy        Key = "CopyOutlined"
	Export      Key = "ExportOutlined"
	Menu        Key = "MenuOutlined"
	Close       Key = "CloseOutlined"
	Sun         Key = "SunOutlined"
	Moon        Key = "MoonOutlined"
)

// Icon is a renderable glyph.
type Icon struct {
	Key   Key
	Label string
	body  string
}

// SVG renders the glyph as an inline, decorative SVG element.
func (i Icon) SVG(class string) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<svg class="icon %s" data-icon="%s" viewBox="0 0 24 24" width="1em" height="1em" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true" focusable="false">%s</svg>`,
		template.HTMLEscapeString(class), i.Key, i.body,
	))
}

// Registry is an immutable key to glyph mapping.
type Registry struct {
	icons map[Key]Icon
}

// Default returns the registry with every built-in glyph.
func Default() *Registry {
	icons := make(map[Key]Icon, len(glyphs))
	for key, g := range glyphs {
		icons[key] = Icon{Key: key, Label: g.label, body: g.body}
	}
	return &Registry{icons: icons}
}

// Resolve looks up a free-form key. Unknown keys report false; callers render
// nothing for that slot.
func (r *Registry) Resolve(key string) (Icon, bool) {
	if r == nil {
		return Icon{}, false
	}
	icon, ok := r.icons[Key(key)]
	return icon, ok
}

// Keys lists the registered keys in sorted order.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.icons))
	for k := range r.icons {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
