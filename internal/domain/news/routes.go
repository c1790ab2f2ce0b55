package news

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/news", h.List)
	api.GET("/news/:id", h.Read)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	items := admin.Group("/news")
	{
		items.GET("", h.AdminList)
		items.GET("/:id", h.AdminGet)
		items.POST("", h.Create)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}
