package payment

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"academy/internal/domain"
)

type Kind string

const (
	KindMembership Kind = "membership"
	KindShop       Kind = "shop"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusExpired Status = "expired"
)

type Package string

const (
	PackageLicense Package = "licence"
	PackagePremium Package = "premium"
)

// ParsePackage accepts both spellings of the yearly licence.
func ParsePackage(s string) (Package, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "licence", "license":
		return PackageLicense, nil
	case "premium":
		return PackagePremium, nil
	}
	return "", ErrInvalidPackage
}

// Transaction tracks one provider checkout session from creation until the
// provider reports it paid or expired.
type Transaction struct {
	domain.Document
	SessionID string          `json:"session_id" gorm:"size:255;uniqueIndex;not null"`
	Kind      Kind            `json:"kind" gorm:"size:16;not null"`
	UserID    string          `json:"user_id" gorm:"size:36;index;not null"`
	Email     string          `json:"email" gorm:"size:255"`
	PackageID Package         `json:"package_id,omitempty" gorm:"size:32"`
	OrderID   string          `json:"order_id,omitempty" gorm:"size:36;index"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Currency  string          `json:"currency" gorm:"size:8;not null"`
	Status    Status          `json:"status" gorm:"size:16;index;not null"`
	PaidAt    *time.Time      `json:"paid_at,omitempty"`
}

func (Transaction) TableName() string { return "payment_transactions" }
