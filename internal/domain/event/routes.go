package event

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/events", h.List)
	api.GET("/events/:id", h.Get)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/events/:id/register", h.Register)
	protected.DELETE("/events/:id/register", h.Unregister)
	protected.GET("/my-registrations", h.MyRegistrations)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	events := admin.Group("/events")
	{
		events.POST("", h.Create)
		events.PUT("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
		events.GET("/:id/registrations", h.EventRegistrations)
	}
}
