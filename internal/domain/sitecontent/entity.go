package sitecontent

import "academy/internal/domain"

// documentKey names the single row holding the public site texts.
const documentKey = "site_content"

type Section string

const (
	SectionHero        Section = "hero"
	SectionAbout       Section = "about"
	SectionFeatures    Section = "features"
	SectionContact     Section = "contact"
	SectionSocialLinks Section = "social_links"
	SectionFooter      Section = "footer"
)

type Hero struct {
	Title       string `json:"title" validate:"max=200"`
	Subtitle    string `json:"subtitle" validate:"max=300"`
	Description string `json:"description" validate:"max=2000"`
	CTAText     string `json:"cta_text" validate:"max=100"`
	CTALink     string `json:"cta_link" validate:"max=512"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type About struct {
	Title       string `json:"title" validate:"max=200"`
	Description string `json:"description" validate:"max=5000"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

type Feature struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=1000"`
	Icon        string `json:"icon" validate:"max=64"`
}

type Contact struct {
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"max=32"`
	Address string `json:"address" validate:"max=512"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook" validate:"omitempty,url"`
	Instagram string `json:"instagram" validate:"omitempty,url"`
	Youtube   string `json:"youtube" validate:"omitempty,url"`
}

type Footer struct {
	Tagline   string `json:"tagline" validate:"max=300"`
	Copyright string `json:"copyright" validate:"max=300"`
}

// Content is the whole editable home page.
type Content struct {
	Hero        Hero        `json:"hero"`
	About       About       `json:"about"`
	Features    []Feature   `json:"features" validate:"max=24,dive"`
	Contact     Contact     `json:"contact"`
	SocialLinks SocialLinks `json:"social_links"`
	Footer      Footer      `json:"footer"`
}

// target returns a pointer to the named section inside c.
func (c *Content) target(s Section) (any, bool) {
	switch s {
	case SectionHero:
		return &c.Hero, true
	case SectionAbout:
		return &c.About, true
	case SectionFeatures:
		return &c.Features, true
	case SectionContact:
		return &c.Contact, true
	case SectionSocialLinks:
		return &c.SocialLinks, true
	case SectionFooter:
		return &c.Footer, true
	}
	return nil, false
}

type Document struct {
	domain.Document
	Name      string  `json:"-" gorm:"size:64;uniqueIndex;not null"`
	Content   Content `json:"content" gorm:"serializer:json;type:jsonb;not null"`
	UpdatedBy string  `json:"updated_by,omitempty" gorm:"size:36"`
}

func (Document) TableName() string { return "site_content" }

// Defaults is served until an admin saves the first version.
func Defaults() Content {
	return Content{
		Hero: Hero{
			Title:       "Académie Jacques Levinet",
			Subtitle:    "Self-défense et arts martiaux",
			Description: "Rejoignez un réseau international de clubs et d'instructeurs.",
			CTAText:     "Nous rejoindre",
			CTALink:     "/join",
		},
		About: About{
			Title:       "À propos",
			Description: "Une méthode de self-défense réaliste enseignée dans le monde entier.",
		},
		Features: []Feature{},
		Footer: Footer{
			Copyright: "© Académie Jacques Levinet",
		},
	}
}
