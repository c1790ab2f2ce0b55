package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document is embedded by every persisted record. PK is the store's native
// key and never leaves the process; ID is the public identifier.
type Document struct {
	PK        uint64    `json:"-" gorm:"column:pk;primaryKey;autoIncrement"`
	ID        string    `json:"id" gorm:"size:36;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Document) BeforeCreate(*gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// Page bounds a list query.
type Page struct {
	Limit  int
	Offset int
}

// Clamp returns p with Limit in [1, max] (def when unset) and a
// non-negative Offset.
func (p Page) Clamp(def, max int) Page {
	if p.Limit <= 0 {
		p.Limit = def
	}
	if p.Limit > max {
		p.Limit = max
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
