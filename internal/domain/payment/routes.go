package payment

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.POST("/payments/webhook", h.Webhook)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	payments := protected.Group("/payments")
	{
		payments.POST("/membership/checkout", h.MembershipCheckout)
		payments.POST("/shop/checkout", h.ShopCheckout)
		payments.GET("/status/:session_id", h.Status)
	}
}
