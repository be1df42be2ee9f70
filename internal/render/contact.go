package render

import (
	"html/template"
	"strings"

	"github.com/Zachkp/portfolio/internal/clipboard"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/icons"
)

type ContactView struct {
	Badge       string
	Description template.HTML
	Details     []ContactDetail
	SocialsText string
	Socials     []SocialView
}

// ContactDetail is a copyable value with its outbound link. Success and
// Failure are the notifications the copy button shows.
type ContactDetail struct {
	Label    string
	Value    string
	Href     template.URL
	Icon     template.HTML
	CopyIcon template.HTML
	Success  string
	Failure  string
}

// BuildContact falls back to the home socials when the contact section
// lists none of its own.
func BuildContact(doc *content.Document, env Env) *ContactView {
	c := doc.Contact
	if c == nil {
		return nil
	}
	v := &ContactView{
		Badge:       badge(c.Badge, titleBadge(ContactID)),
		SocialsText: c.SocialsText,
	}
	if c.Description != "" {
		v.Description = rich(c.Description)
	}

	copyIcon := env.glyph(icons.Copy, "copy-icon")
	if c.Email != "" {
		v.Details = append(v.Details, contactDetail("Email", c.Email, "mailto:", env.glyph(icons.Mail, "detail-icon"), copyIcon))
	}
	if c.Phone != "" {
		v.Details = append(v.Details, contactDetail("Phone", c.Phone, "tel:", env.glyph(icons.Phone, "detail-icon"), copyIcon))
	}

	socials := c.Socials
	if len(socials) == 0 && doc.Home != nil {
		socials = doc.Home.Socials
	}
	v.Socials = ResolveSocials(env.Icons, socials)
	return v
}

func contactDetail(label, value, scheme string, icon, copyIcon template.HTML) ContactDetail {
	target := value
	if scheme == "tel:" {
		target = strings.ReplaceAll(value, " ", "")
	}
	return ContactDetail{
		Label:    label,
		Value:    value,
		Href:     template.URL(scheme + target),
		Icon:     icon,
		CopyIcon: copyIcon,
		Success:  clipboard.SuccessMessage(label),
		Failure:  clipboard.FailureMessage(label),
	}
}
