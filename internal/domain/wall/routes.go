package wall

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	posts := protected.Group("/wall/posts")
	{
		posts.GET("", h.Feed)
		posts.POST("", h.CreatePost)
		posts.DELETE("/:id", h.DeletePost)
		posts.GET("/:id/comments", h.Comments)
		posts.POST("/:id/comments", h.AddComment)
		posts.POST("/:id/reactions", h.React)
	}
}
