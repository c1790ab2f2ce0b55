package chat

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	conv := protected.Group("/conversations")
	{
		conv.POST("", h.Start)
		conv.GET("", h.List)
		conv.GET("/unread-count", h.UnreadCount)
		conv.GET("/:id/messages", h.Messages)
		conv.POST("/:id/messages", h.Send)
	}
}
