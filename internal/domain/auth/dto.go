package auth

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	FullName string `json:"full_name" binding:"required,min=2,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName  *string `json:"full_name" binding:"omitempty,min=2,max=255"`
	Phone     *string `json:"phone" binding:"omitempty,max=32"`
	City      *string `json:"city" binding:"omitempty,max=128"`
	Country   *string `json:"country" binding:"omitempty,max=128"`
	BeltGrade *string `json:"belt_grade"`
	ClubID    *string `json:"club_id"`
	Bio       *string `json:"bio" binding:"omitempty,max=2000"`
	PhotoURL  *string `json:"photo_url" binding:"omitempty,max=512"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6,max=72"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// NewUser describes an account to create. Exactly one of Password and
// PasswordHash is expected; PasswordHash wins when both are set.
type NewUser struct {
	Email        string
	Password     string
	PasswordHash string
	FullName     string
	Role         string
	Phone        string
	City         string
	Country      string
	ClubID       string
	BeltGrade    string
}
