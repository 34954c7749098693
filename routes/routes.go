package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kevinlim605/TechShop/config"
	"github.com/kevinlim605/TechShop/controllers"
	"github.com/kevinlim605/TechShop/middleware"
)

// SetupRoutes wires middleware and all resource route tables.
func SetupRoutes(r *gin.Engine) {
	cfg := config.Get()

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	SetupUserRoutes(r)
	SetupProductRoutes(r)
	SetupOrderRoutes(r)
	SetupUploadRoutes(r)

	r.GET("/api/config/paypal", controllers.GetPayPalClientID)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// uploaded images are served straight from disk
	r.Static("/uploads", cfg.UploadDir)

	r.NoRoute(middleware.NotFound())
}
