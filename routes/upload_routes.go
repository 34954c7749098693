package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kevinlim605/TechShop/controllers"
	"github.com/kevinlim605/TechShop/middleware"
)

func SetupUploadRoutes(r *gin.Engine) {
	r.POST("/api/upload", middleware.Protect(), middleware.Admin(), controllers.UploadImage)
}
