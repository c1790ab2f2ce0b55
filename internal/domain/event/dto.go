package event

import "time"

type CreateRequest struct {
	Title       string    `json:"title" binding:"required,min=3,max=255"`
	Description string    `json:"description"`
	Kind        string    `json:"kind" binding:"max=64"`
	Location    string    `json:"location" binding:"max=512"`
	City        string    `json:"city" binding:"max=128"`
	Country     string    `json:"country" binding:"max=128"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	EndsAt      time.Time `json:"ends_at"`
	Capacity    int       `json:"capacity" binding:"min=0"`
	ImageURL    string    `json:"image_url" binding:"max=512"`
}

type UpdateRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=3,max=255"`
	Description *string    `json:"description"`
	Kind        *string    `json:"kind" binding:"omitempty,max=64"`
	Location    *string    `json:"location" binding:"omitempty,max=512"`
	City        *string    `json:"city" binding:"omitempty,max=128"`
	Country     *string    `json:"country" binding:"omitempty,max=128"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	Capacity    *int       `json:"capacity" binding:"omitempty,min=0"`
	ImageURL    *string    `json:"image_url" binding:"omitempty,max=512"`
}
