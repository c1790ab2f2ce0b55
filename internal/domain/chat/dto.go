package chat

type StartRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
}

type SendRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}
