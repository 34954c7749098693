package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kevinlim605/TechShop/controllers"
	"github.com/kevinlim605/TechShop/middleware"
)

func SetupProductRoutes(r *gin.Engine) {
	products := r.Group("/api/products")

	products.GET("", controllers.GetProducts)
	products.GET("/top", controllers.GetTopProducts)
	products.GET("/:id", controllers.GetProductByID)

	products.POST("", middleware.Protect(), middleware.Admin(), controllers.CreateProduct)
	products.PUT("/:id", middleware.Protect(), middleware.Admin(), controllers.UpdateProduct)
	products.DELETE("/:id", middleware.Protect(), middleware.Admin(), controllers.DeleteProduct)

	products.POST("/:id/reviews", middleware.Protect(), controllers.CreateProductReview)
}
