package tasks

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/kevinlim605/TechShop/logger"
	"github.com/kevinlim605/TechShop/models"
)

// Start schedules the nightly rating sweep and returns the scheduler
// so the caller can Stop it on shutdown.
func Start() *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("0 3 * * *", RatingSweep)
	if err != nil {
		logger.L().Fatal("failed to schedule rating sweep", zap.Error(err))
	}
	c.Start()
	return c
}

// RatingSweep recomputes every product's rating and numReviews from its
// embedded review list. Concurrent review writes are not coordinated,
// so the derived fields can drift; this repairs them offline.
func RatingSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	products, err := models.AllProducts(ctx)
	if err != nil {
		logger.L().Error("rating sweep failed to list products", zap.Error(err))
		return
	}

	repaired := 0
	for _, product := range products {
		before := product
		product.RecountRating()
		if product.Rating == before.Rating && product.NumReviews == before.NumReviews {
			continue
		}
		if _, err := models.SaveProduct(product); err != nil {
			logger.L().Error("rating sweep failed to save product",
				zap.String("product", product.ID.Hex()), zap.Error(err))
			continue
		}
		repaired++
	}

	logger.L().Info("rating sweep finished",
		zap.Int("products", len(products)), zap.Int("repaired", repaired))
}
