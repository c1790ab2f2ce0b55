package membership

import (
	"time"

	"academy/internal/domain"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Application is a membership request awaiting admin review. It only
// moves forward: pending -> approved | rejected.
type Application struct {
	domain.Document
	FullName        string     `json:"full_name" gorm:"size:255;not null"`
	Email           string     `json:"email" gorm:"size:255;index;not null"`
	PasswordHash    string     `json:"-" gorm:"not null"`
	Phone           string     `json:"phone" gorm:"size:32"`
	City            string     `json:"city" gorm:"size:128"`
	Country         string     `json:"country" gorm:"size:128"`
	ClubID          string     `json:"club_id,omitempty" gorm:"size:36"`
	Message         string     `json:"message,omitempty" gorm:"type:text"`
	Status          Status     `json:"status" gorm:"size:16;index;not null"`
	RejectionReason string     `json:"rejection_reason,omitempty" gorm:"type:text"`
	ReviewedBy      string     `json:"reviewed_by,omitempty" gorm:"size:36"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	UserID          string     `json:"user_id,omitempty" gorm:"size:36"`
}

func (Application) TableName() string { return "pending_members" }
