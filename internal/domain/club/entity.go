package club

import (
	"academy/internal/domain"
	"academy/internal/domain/auth"
)

type Club struct {
	domain.Document
	Name                string `json:"name" gorm:"size:255;not null"`
	Slug                string `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	City                string `json:"city" gorm:"size:128;index"`
	Country             string `json:"country" gorm:"size:128;index"`
	Address             string `json:"address,omitempty" gorm:"size:512"`
	Phone               string `json:"phone,omitempty" gorm:"size:32"`
	Email               string `json:"email,omitempty" gorm:"size:255"`
	Website             string `json:"website,omitempty" gorm:"size:512"`
	Description         string `json:"description,omitempty" gorm:"type:text"`
	Schedule            string `json:"schedule,omitempty" gorm:"type:text"`
	LogoURL             string `json:"logo_url,omitempty" gorm:"size:512"`
	TechnicalDirectorID string `json:"technical_director_id,omitempty" gorm:"size:36;index"`
}

type DirectorStats struct {
	ClubsCount   int64 `json:"clubs_count"`
	MembersCount int64 `json:"members_count"`
}

// Director is a technical director as listed publicly.
type Director struct {
	auth.PublicProfile
	DirectorStats
}
