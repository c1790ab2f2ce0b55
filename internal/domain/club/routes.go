package club

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/clubs", h.List)
	api.GET("/clubs/:id", h.Get)
	api.GET("/technical-directors", h.Directors)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	clubs := admin.Group("/clubs")
	{
		clubs.POST("", h.Create)
		clubs.PUT("/:id", h.Update)
		clubs.DELETE("/:id", h.Delete)
	}
}
