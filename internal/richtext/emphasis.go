// Package richtext renders the **emphasis** markup used in content text.
package richtext

import (
	"html/template"
	"iter"
	"regexp"
	"strings"
)

const marker = "**"

var emphasisPattern = regexp.MustCompile(`\*\*.*?\*\*`)

// Segment is one run of text; Emphasis segments had their markers removed.
type Segment struct {
	Text     string
	Emphasis bool
}

// Raw returns the segment as it appeared in the source string.
func (s Segment) Raw() string {
	if s.Emphasis {
		return marker + s.Text + marker
	}
	return s.Text
}

// Split yields the alternating plain and emphasized runs of s in order.
// Empty plain runs are skipped. The sequence holds no state of its own and
// can be ranged over any number of times.
func Split(s string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		last := 0
		for _, loc := range emphasisPattern.FindAllStringIndex(s, -1) {
			if loc[0] > last {
				if !yield(Segment{Text: s[last:loc[0]]}) {
					return
				}
			}
			inner := s[loc[0]+len(marker) : loc[1]-len(marker)]
			if !yield(Segment{Text: inner, Emphasis: true}) {
				return
			}
			last = loc[1]
		}
		if last < len(s) {
			yield(Segment{Text: s[last:]})
		}
	}
}

// Render escapes s and wraps emphasized runs in <strong>.
func Render(s string) template.HTML {
	var b strings.Builder
	for seg := range Split(s) {
		if seg.Emphasis {
			b.WriteString(`<strong class="emphasis">`)
			b.WriteString(template.HTMLEscapeString(seg.Text))
			b.WriteString(`</strong>`)
			continue
		}
		b.WriteString(template.HTMLEscapeString(seg.Text))
	}
	return template.HTML(b.String())
}
