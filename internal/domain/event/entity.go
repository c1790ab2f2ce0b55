package event

import (
	"time"

	"academy/internal/domain"
)

type Event struct {
	domain.Document
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Kind        string    `json:"kind,omitempty" gorm:"size:64"`
	Location    string    `json:"location" gorm:"size:512"`
	City        string    `json:"city,omitempty" gorm:"size:128"`
	Country     string    `json:"country,omitempty" gorm:"size:128"`
	StartsAt    time.Time `json:"starts_at" gorm:"index;not null"`
	EndsAt      time.Time `json:"ends_at"`
	Capacity    int       `json:"capacity"`
	ImageURL    string    `json:"image_url,omitempty" gorm:"size:512"`
	CreatedBy   string    `json:"created_by" gorm:"size:36"`

	RegisteredCount int64 `json:"registered_count" gorm:"-"`
}

// Full reports whether a capacity-bound event has no seat left.
func (e *Event) Full() bool {
	return e.Capacity > 0 && e.RegisteredCount >= int64(e.Capacity)
}

type Registration struct {
	domain.Document
	EventID  string `json:"event_id" gorm:"size:36;not null;uniqueIndex:idx_registration_event_user"`
	UserID   string `json:"user_id" gorm:"size:36;not null;uniqueIndex:idx_registration_event_user;index"`
	FullName string `json:"full_name" gorm:"size:255"`
	Email    string `json:"email" gorm:"size:255"`
}

// RegistrationView is a registration joined with its event.
type RegistrationView struct {
	Registration
	Event *Event `json:"event,omitempty" gorm:"-"`
}
