package admin

import (
	"github.com/shopspring/decimal"

	"academy/internal/domain/auth"
)

type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=6,max=72"`
	FullName  string `json:"full_name" binding:"required,min=2,max=255"`
	Role      string `json:"role" binding:"required"`
	Phone     string `json:"phone" binding:"max=32"`
	City      string `json:"city" binding:"max=128"`
	Country   string `json:"country" binding:"max=128"`
	ClubID    string `json:"club_id"`
	BeltGrade string `json:"belt_grade"`
}

type SetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6,max=72"`
}

type SubscriptionRequest struct {
	HasPaidLicense *bool `json:"has_paid_license"`
	IsPremium      *bool `json:"is_premium"`
}

type CountryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

type Stats struct {
	TotalMembers        int64               `json:"total_members"`
	TotalUsers          int64               `json:"total_users"`
	PaidLicenses        int64               `json:"paid_licenses"`
	PremiumMembers      int64               `json:"premium_members"`
	PendingApplications int64               `json:"pending_applications"`
	NewMembersThisMonth int64               `json:"new_members_this_month"`
	Revenue             decimal.Decimal     `json:"revenue"`
	Currency            string              `json:"currency"`
	MembersByCountry    []CountryCount      `json:"members_by_country"`
	UsersByRole         map[auth.Role]int64 `json:"users_by_role"`
}
