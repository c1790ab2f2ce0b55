package news

type CreateRequest struct {
	Title    string `json:"title" binding:"required,min=3,max=255"`
	Excerpt  string `json:"excerpt" binding:"max=1024"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
	Status   string `json:"status"`
	ImageURL string `json:"image_url" binding:"max=512"`
}

type UpdateRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=3,max=255"`
	Excerpt  *string `json:"excerpt" binding:"omitempty,max=1024"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Status   *string `json:"status"`
	ImageURL *string `json:"image_url" binding:"omitempty,max=512"`
}

type Filter struct {
	Status   Status
	Category Category
	Limit    int
}
