package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kevinlim605/TechShop/controllers"
	"github.com/kevinlim605/TechShop/middleware"
)

func SetupOrderRoutes(r *gin.Engine) {
	orders := r.Group("/api/orders")
	orders.Use(middleware.Protect())

	orders.POST("", controllers.AddOrderItems)
	orders.GET("/myorders", controllers.GetMyOrders)
	orders.GET("/:id", controllers.GetOrderByID)
	orders.PUT("/:id/pay", controllers.UpdateOrderToPaid)

	orders.GET("", middleware.Admin(), controllers.GetOrders)
	orders.PUT("/:id/deliver", middleware.Admin(), controllers.UpdateOrderToDelivered)
}
