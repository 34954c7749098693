package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/kevinlim605/TechShop/config"
	"github.com/kevinlim605/TechShop/logger"
)

var Client *mongo.Client

var (
	UserCollection    *mongo.Collection
	ProductCollection *mongo.Collection
	OrderCollection   *mongo.Collection
)

// InitDB connects to MongoDB and binds the collection handles.
func InitDB() {
	cfg := config.Get()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.L().Fatal("failed to connect to MongoDB", zap.Error(err))
	}

	if err := client.Ping(ctx, nil); err != nil {
		logger.L().Fatal("failed to ping MongoDB", zap.Error(err))
	}

	Client = client
	UserCollection = client.Database(cfg.DBName).Collection("users")
	ProductCollection = client.Database(cfg.DBName).Collection("products")
	OrderCollection = client.Database(cfg.DBName).Collection("orders")

	// email uniqueness is enforced by the database, not just the
	// pre-insert lookup in the register handler
	_, err = UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.L().Fatal("failed to create unique email index", zap.Error(err))
	}

	logger.L().Info("connected to MongoDB", zap.String("db", cfg.DBName))
}

func DisconnectDB() {
	if Client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Disconnect(ctx); err != nil {
		logger.L().Warn("failed to disconnect MongoDB", zap.Error(err))
		return
	}
	logger.L().Info("disconnected from MongoDB")
}

// OpenCollection returns a collection handle by name.
func OpenCollection(name string) *mongo.Collection {
	return Client.Database(config.Get().DBName).Collection(name)
}
