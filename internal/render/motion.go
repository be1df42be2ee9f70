package render

import (
	"fmt"
	"html/template"
)

// Motion is the optional entrance-animation decoration. Disabled, it emits
// nothing and the markup is identical to the plain page.
type Motion struct {
	Enabled bool
}

// Attr returns the data-motion attribute for effect, or nothing.
func (m Motion) Attr(effect string) template.HTMLAttr {
	if !m.Enabled || effect == "" {
		return ""
	}
	return template.HTMLAttr(fmt.Sprintf(`data-motion="%s"`, template.HTMLEscapeString(effect)))
}
