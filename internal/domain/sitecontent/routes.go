package sitecontent

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/site-content", h.Public)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	content := admin.Group("/site-content")
	{
		content.GET("", h.AdminGet)
		content.PUT("", h.Replace)
		content.PUT("/:section", h.UpdateSection)
	}
}
