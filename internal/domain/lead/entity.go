package lead

import "academy/internal/domain"

type PersonType string

const (
	PersonWoman        PersonType = "Femme"
	PersonMan          PersonType = "Homme"
	PersonChild        PersonType = "Enfant"
	PersonProfessional PersonType = "Professionnel"
)

func (p PersonType) Valid() bool {
	switch p {
	case PersonWoman, PersonMan, PersonChild, PersonProfessional:
		return true
	}
	return false
}

type Status string

const (
	StatusNew           Status = "Nouveau"
	StatusContacted     Status = "Contacté"
	StatusConverted     Status = "Converti"
	StatusNotInterested Status = "Non intéressé"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusConverted, StatusNotInterested:
		return true
	}
	return false
}

type Lead struct {
	domain.Document
	PersonType  PersonType `json:"person_type" gorm:"size:32;index"`
	Motivations []string   `json:"motivations" gorm:"serializer:json;type:jsonb"`
	FullName    string     `json:"full_name" gorm:"size:255;not null"`
	Email       string     `json:"email" gorm:"size:255;index;not null"`
	Phone       string     `json:"phone" gorm:"size:32"`
	City        string     `json:"city" gorm:"size:128"`
	Country     string     `json:"country" gorm:"size:128"`
	Status      Status     `json:"status" gorm:"size:32;index"`
	Notes       string     `json:"notes,omitempty" gorm:"type:text"`
	Source      string     `json:"source,omitempty" gorm:"size:64"`
	IPAddress   string     `json:"-" gorm:"size:64"`
	UserAgent   string     `json:"-" gorm:"size:512"`
}
