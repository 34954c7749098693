package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kevinlim605/TechShop/config"
	"github.com/kevinlim605/TechShop/database"
	"github.com/kevinlim605/TechShop/logger"
	"github.com/kevinlim605/TechShop/routes"
	"github.com/kevinlim605/TechShop/tasks"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Env); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		logger.L().Fatal("JWT_SECRET is not set")
	}

	database.InitDB()
	defer database.DisconnectDB()

	sweeper := tasks.Start()
	defer sweeper.Stop()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.SetupRoutes(r)

	logger.L().Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.L().Fatal("failed to start server", zap.Error(err))
	}
}
