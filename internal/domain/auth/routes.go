package auth

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
	api.GET("/directory", h.Directory)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/auth/me", h.Me)

	profile := protected.Group("/profile")
	{
		profile.PUT("", h.UpdateProfile)
		profile.PUT("/password", h.ChangePassword)
	}

	protected.GET("/members", h.ListMembers)
	protected.GET("/members/:id", h.GetMember)
	protected.GET("/users/search", h.SearchUsers)
}
