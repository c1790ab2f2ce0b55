package lead

type SubmitRequest struct {
	PersonType  string   `json:"person_type" binding:"required"`
	Motivations []string `json:"motivations" binding:"max=20,dive,max=255"`
	FullName    string   `json:"full_name" binding:"required,min=2,max=255"`
	Email       string   `json:"email" binding:"required,email,max=255"`
	Phone       string   `json:"phone" binding:"required,max=32"`
	City        string   `json:"city" binding:"required,max=128"`
	Country     string   `json:"country" binding:"required,max=128"`
}

type UpdateStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

type Filter struct {
	Status     Status
	PersonType PersonType
}
