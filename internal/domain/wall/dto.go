package wall

type CreatePostRequest struct {
	Content  string `json:"content" binding:"required,max=5000"`
	ImageURL string `json:"image_url" binding:"omitempty,url,max=512"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

type ReactRequest struct {
	Type string `json:"type" binding:"required"`
}
