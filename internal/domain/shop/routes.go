package shop

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/products", h.ListProducts)
	api.GET("/products/:id", h.GetProduct)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/orders/my", h.MyOrders)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	products := admin.Group("/products")
	{
		products.GET("", h.AdminListProducts)
		products.GET("/:id", h.AdminGetProduct)
		products.POST("", h.CreateProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}

	orders := admin.Group("/orders")
	{
		orders.GET("", h.AdminListOrders)
		orders.PUT("/:id/status", h.UpdateOrderStatus)
	}
}
