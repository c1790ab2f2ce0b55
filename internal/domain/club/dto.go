package club

type CreateClubRequest struct {
	Name                string `json:"name" binding:"required,min=2,max=255"`
	City                string `json:"city" binding:"required,max=128"`
	Country             string `json:"country" binding:"required,max=128"`
	Address             string `json:"address" binding:"max=512"`
	Phone               string `json:"phone" binding:"max=32"`
	Email               string `json:"email" binding:"omitempty,email"`
	Website             string `json:"website" binding:"omitempty,url"`
	Description         string `json:"description"`
	Schedule            string `json:"schedule"`
	LogoURL             string `json:"logo_url" binding:"max=512"`
	TechnicalDirectorID string `json:"technical_director_id"`
}

type UpdateClubRequest struct {
	Name                *string `json:"name" binding:"omitempty,min=2,max=255"`
	City                *string `json:"city" binding:"omitempty,max=128"`
	Country             *string `json:"country" binding:"omitempty,max=128"`
	Address             *string `json:"address" binding:"omitempty,max=512"`
	Phone               *string `json:"phone" binding:"omitempty,max=32"`
	Email               *string `json:"email" binding:"omitempty,email"`
	Website             *string `json:"website" binding:"omitempty,url"`
	Description         *string `json:"description"`
	Schedule            *string `json:"schedule"`
	LogoURL             *string `json:"logo_url" binding:"omitempty,max=512"`
	TechnicalDirectorID *string `json:"technical_director_id"`
}

type Filter struct {
	City    string
	Country string
}
