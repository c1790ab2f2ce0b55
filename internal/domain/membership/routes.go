package membership

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.POST("/membership/apply", h.Apply)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	pending := admin.Group("/pending-members")
	{
		pending.GET("", h.List)
		pending.POST("/:id/approve", h.Approve)
		pending.POST("/:id/reject", h.Reject)
	}
}
