package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kevinlim605/TechShop/controllers"
	"github.com/kevinlim605/TechShop/middleware"
)

func SetupUserRoutes(r *gin.Engine) {
	users := r.Group("/api/users")

	users.POST("/login", controllers.AuthUser)
	users.POST("", controllers.RegisterUser)

	users.GET("/profile", middleware.Protect(), controllers.GetUserProfile)
	users.PUT("/profile", middleware.Protect(), controllers.UpdateUserProfile)

	users.GET("", middleware.Protect(), middleware.Admin(), controllers.GetUsers)
	users.GET("/:id", middleware.Protect(), middleware.Admin(), controllers.GetUserByID)
	users.PUT("/:id", middleware.Protect(), middleware.Admin(), controllers.UpdateUser)
	users.DELETE("/:id", middleware.Protect(), middleware.Admin(), controllers.DeleteUser)
}
