package main

import (
	"context"
	"flag"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/kevinlim605/TechShop/config"
	"github.com/kevinlim605/TechShop/database"
	"github.com/kevinlim605/TechShop/logger"
	"github.com/kevinlim605/TechShop/models"
)

func main() {
	destroy := flag.Bool("d", false, "destroy all data instead of importing")
	flag.Parse()

	cfg := config.Load()
	if err := logger.Init(cfg.Env); err != nil {
		panic(err)
	}
	defer logger.Sync()

	database.InitDB()
	defer database.DisconnectDB()

	if *destroy {
		destroyData()
		return
	}
	importData()
}

func clearCollections(ctx context.Context) error {
	if _, err := database.OrderCollection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if _, err := database.ProductCollection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	_, err := database.UserCollection.DeleteMany(ctx, bson.M{})
	return err
}

func importData() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := clearCollections(ctx); err != nil {
		logger.L().Fatal("failed to clear collections", zap.Error(err))
	}

	var admin models.User
	for i, seed := range sampleUsers() {
		user, err := models.CreateUser(seed)
		if err != nil {
			logger.L().Fatal("failed to insert user", zap.Error(err))
		}
		if i == 0 {
			admin = user
		}
	}

	for _, product := range sampleProducts() {
		product.User = admin.ID
		if _, err := models.CreateProduct(product); err != nil {
			logger.L().Fatal("failed to insert product", zap.Error(err))
		}
	}

	logger.L().Info("data imported")
}

func destroyData() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := clearCollections(ctx); err != nil {
		logger.L().Fatal("failed to clear collections", zap.Error(err))
	}
	logger.L().Info("data destroyed")
}
