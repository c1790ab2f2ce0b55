package admin

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	users := admin.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.GET("/:id", h.GetUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
		users.PUT("/:id/role", h.SetRole)
		users.PUT("/:id/password", h.SetPassword)
	}

	admin.PUT("/members/:id/subscription", h.SetSubscription)
	admin.GET("/stats", h.Stats)
}
