package auth

import (
	"strings"

	"academy/internal/domain"
)

type Role string

const (
	RoleAdmin              Role = "admin"
	RoleFondateur          Role = "fondateur"
	RoleDirecteurNational  Role = "directeur_national"
	RoleDirecteurTechnique Role = "directeur_technique"
	RoleInstructeur        Role = "instructeur"
	RoleMembre             Role = "membre"
)

var roleAliases = map[string]Role{
	"member":             RoleMembre,
	"user":               RoleMembre,
	"instructor":         RoleInstructeur,
	"technical_director": RoleDirecteurTechnique,
	"national_director":  RoleDirecteurNational,
	"founder":            RoleFondateur,
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleFondateur, RoleDirecteurNational, RoleDirecteurTechnique, RoleInstructeur, RoleMembre:
		return true
	}
	return false
}

// Listed reports whether users with this role appear in the public
// directory.
func (r Role) Listed() bool {
	switch r {
	case RoleFondateur, RoleDirecteurNational, RoleDirecteurTechnique, RoleInstructeur:
		return true
	}
	return false
}

// ParseRole normalises s (case, surrounding space, English aliases) and
// rejects anything outside the closed set.
func ParseRole(s string) (Role, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if alias, ok := roleAliases[key]; ok {
		return alias, nil
	}
	if r := Role(key); r.Valid() {
		return r, nil
	}
	return "", ErrInvalidRole
}

var BeltGrades = []string{
	"Ceinture Blanche",
	"Ceinture Jaune",
	"Ceinture Orange",
	"Ceinture Verte",
	"Ceinture Bleue",
	"Ceinture Marron",
	"Ceinture Noire",
	"Ceinture Noire 1er Dan",
	"Ceinture Noire 2ème Dan",
	"Ceinture Noire 3ème Dan",
	"Ceinture Noire 4ème Dan",
	"Ceinture Noire 5ème Dan",
	"Ceinture Noire 6ème Dan",
	"Ceinture Noire 7ème Dan",
	"Ceinture Noire 8ème Dan",
	"Ceinture Noire 9ème Dan",
	"Ceinture Noire 10ème Dan",
}

func ValidBeltGrade(s string) bool {
	for _, g := range BeltGrades {
		if g == s {
			return true
		}
	}
	return false
}

type User struct {
	domain.Document
	Email                string `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash         string `json:"-" gorm:"not null"`
	FullName             string `json:"full_name" gorm:"size:255"`
	Role                 Role   `json:"role" gorm:"size:32;index;not null"`
	HasPaidLicense       bool   `json:"has_paid_license" gorm:"not null;default:false"`
	IsPremium            bool   `json:"is_premium" gorm:"not null;default:false"`
	StripeCustomerID     string `json:"-" gorm:"size:255"`
	StripeSubscriptionID string `json:"-" gorm:"size:255;index"`
	Phone                string `json:"phone,omitempty" gorm:"size:32"`
	City                 string `json:"city,omitempty" gorm:"size:128"`
	Country              string `json:"country,omitempty" gorm:"size:128;index"`
	BeltGrade            string `json:"belt_grade,omitempty" gorm:"size:64"`
	ClubID               string `json:"club_id,omitempty" gorm:"size:36;index"`
	Bio                  string `json:"bio,omitempty" gorm:"type:text"`
	PhotoURL             string `json:"photo_url,omitempty" gorm:"size:512"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// PublicProfile is what other members and anonymous visitors see.
type PublicProfile struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Role      Role   `json:"role"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	BeltGrade string `json:"belt_grade,omitempty"`
	ClubID    string `json:"club_id,omitempty"`
	Bio       string `json:"bio,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
	IsPremium bool   `json:"is_premium"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:        u.ID,
		FullName:  u.FullName,
		Role:      u.Role,
		City:      u.City,
		Country:   u.Country,
		BeltGrade: u.BeltGrade,
		ClubID:    u.ClubID,
		Bio:       u.Bio,
		PhotoURL:  u.PhotoURL,
		IsPremium: u.IsPremium,
	}
}

func PublicProfiles(users []User) []PublicProfile {
	out := make([]PublicProfile, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out
}

// NormalizeEmail is the canonical stored form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
