// Package content holds the portfolio content document and its loader.
//
// The document is read once at startup and never mutated afterwards. Every
// section is optional: a nil section or an empty list means "do not render
// that region".
package content

// Document is the root of the content file.
type Document struct {
	Home       *Home       `json:"home,omitempty" yaml:"home,omitempty"`
	About      *About      `json:"about,omitempty" yaml:"about,omitempty"`
	Skills     *Skills     `json:"skills,omitempty" yaml:"skills,omitempty"`
	Experience *Experience `json:"experience,omitempty" yaml:"experience,omitempty"`
	Projects   *Projects   `json:"projects,omitempty" yaml:"projects,omitempty"`
	Contact    *Contact    `json:"contact,omitempty" yaml:"contact,omitempty"`
	NavLinks   []NavLink   `json:"navLinks,omitempty" yaml:"navLinks,omitempty" validate:"dive"`
	CVPath     string      `json:"cvPath,omitempty" yaml:"cvPath,omitempty"`
}

// Home is the hero section.
type Home struct {
	Greeting         string       `json:"greeting,omitempty" yaml:"greeting,omitempty"`
	Name             string       `json:"name,omitempty" yaml:"name,omitempty"`
	LogoName         string       `json:"logoname,omitempty" yaml:"logoname,omitempty"`
	Description      string       `json:"description,omitempty" yaml:"description,omitempty"`
	Location         string       `json:"location,omitempty" yaml:"location,omitempty"`
	Status           string       `json:"status,omitempty" yaml:"status,omitempty"`
	StatusColor      string       `json:"statusColor,omitempty" yaml:"statusColor,omitempty"`
	ProfileImagePath string       `json:"profileImagePath,omitempty" yaml:"profileImagePath,omitempty"`
	Socials          []SocialLink `json:"socials,omitempty" yaml:"socials,omitempty" validate:"dive"`
}

type About struct {
	Badge          string   `json:"badge,omitempty" yaml:"badge,omitempty"`
	Title          string   `json:"title,omitempty" yaml:"title,omitempty"`
	ImagePath      string   `json:"imagePath,omitempty" yaml:"imagePath,omitempty"`
	Paragraphs     []string `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`
	QuickBitsTitle string   `json:"quickBitsTitle,omitempty" yaml:"quickBitsTitle,omitempty"`
	QuickBits      []string `json:"quickBits,omitempty" yaml:"quickBits,omitempty"`
	ClosingText    string   `json:"closingText,omitempty" yaml:"closingText,omitempty"`
}

type Skills struct {
	Badge string      `json:"badge,omitempty" yaml:"badge,omitempty"`
	Title string      `json:"title,omitempty" yaml:"title,omitempty"`
	List  []SkillItem `json:"list,omitempty" yaml:"list,omitempty" validate:"dive"`
}

type Experience struct {
	Badge string           `json:"badge,omitempty" yaml:"badge,omitempty"`
	Title string           `json:"title,omitempty" yaml:"title,omitempty"`
	List  []ExperienceItem `json:"list,omitempty" yaml:"list,omitempty" validate:"dive"`
}

type Projects struct {
	Badge string        `json:"badge,omitempty" yaml:"badge,omitempty"`
	Title string        `json:"title,omitempty" yaml:"title,omitempty"`
	List  []ProjectItem `json:"list,omitempty" yaml:"list,omitempty" validate:"dive"`
}

type Contact struct {
	Badge       string       `json:"badge,omitempty" yaml:"badge,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Email       string       `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"`
	Phone       string       `json:"phone,omitempty" yaml:"phone,omitempty"`
	SocialsText string       `json:"socialsText,omitempty" yaml:"socialsText,omitempty"`
	Socials     []SocialLink `json:"socials,omitempty" yaml:"socials,omitempty" validate:"dive"`
}

// SocialLink points at an external profile. IconKey is a weak reference
// into the icon registry and may not resolve.
type SocialLink struct {
	IconKey string `json:"iconKey" yaml:"iconKey" validate:"required"`
	Href    string `json:"href" yaml:"href" validate:"required"`
	Label   string `json:"label" yaml:"label" validate:"required"`
	Color   string `json:"color,omitempty" yaml:"color,omitempty"`
}

type NavLink struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	Href string `json:"href" yaml:"href" validate:"required"`
}

// SkillItem.IconPath is an image URL, not a registry key.
type SkillItem struct {
	Name     string `json:"name" yaml:"name" validate:"required"`
	IconPath string `json:"iconPath,omitempty" yaml:"iconPath,omitempty"`
}

type ExperienceItem struct {
	Company           string   `json:"company" yaml:"company" validate:"required"`
	Role              string   `json:"role" yaml:"role" validate:"required"`
	Duration          string   `json:"duration,omitempty" yaml:"duration,omitempty"`
	LogoPath          string   `json:"logoPath,omitempty" yaml:"logoPath,omitempty"`
	DescriptionPoints []string `json:"descriptionPoints,omitempty" yaml:"descriptionPoints,omitempty"`
}

type ProjectItem struct {
	Title        string   `json:"title" yaml:"title" validate:"required"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	ImagePath    string   `json:"imagePath,omitempty" yaml:"imagePath,omitempty"`
	Technologies []string `json:"technologies,omitempty" yaml:"technologies,omitempty"`
	ProjectLink  string   `json:"projectLink,omitempty" yaml:"projectLink,omitempty" validate:"omitempty,url"`
	LiveLink     string   `json:"liveLink,omitempty" yaml:"liveLink,omitempty" validate:"omitempty,url"`
}
