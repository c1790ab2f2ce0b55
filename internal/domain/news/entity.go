package news

import (
	"time"

	"academy/internal/domain"
)

type Category string

const (
	CategoryEvent        Category = "Événement"
	CategoryResult       Category = "Résultat"
	CategoryTraining     Category = "Formation"
	CategoryAnnouncement Category = "Annonce"
	CategoryAchievement  Category = "Réussite"
	CategoryTechnique    Category = "Technique"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryEvent, CategoryResult, CategoryTraining, CategoryAnnouncement, CategoryAchievement, CategoryTechnique:
		return true
	}
	return false
}

type Status string

const (
	StatusDraft     Status = "Brouillon"
	StatusPublished Status = "Publié"
)

func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

type Article struct {
	domain.Document
	Title       string     `json:"title" gorm:"size:255;not null"`
	Slug        string     `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	Excerpt     string     `json:"excerpt" gorm:"size:1024"`
	Content     string     `json:"content" gorm:"type:text"`
	Category    Category   `json:"category" gorm:"size:64;index"`
	Status      Status     `json:"status" gorm:"size:32;index"`
	ImageURL    string     `json:"image_url,omitempty" gorm:"size:512"`
	AuthorID    string     `json:"author_id" gorm:"size:36;index"`
	AuthorName  string     `json:"author_name" gorm:"size:255"`
	Views       int64      `json:"views" gorm:"not null;default:0"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

func (Article) TableName() string { return "news" }
