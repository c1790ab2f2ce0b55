package membership

type ApplyRequest struct {
	FullName string `json:"full_name" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Phone    string `json:"phone" binding:"required,max=32"`
	City     string `json:"city" binding:"required,max=128"`
	Country  string `json:"country" binding:"required,max=128"`
	ClubID   string `json:"club_id"`
	Message  string `json:"message" binding:"max=2000"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"max=2000"`
}
