package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kevinlim605/TechShop/apperr"
	"github.com/kevinlim605/TechShop/database"
)

// PageSize is the fixed number of products per listing page.
const PageSize = 10

type Review struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Name      string             `json:"name" bson:"name"`
	Rating    float64            `json:"rating" bson:"rating"`
	Comment   string             `json:"comment" bson:"comment"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type Product struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	User         primitive.ObjectID `json:"user" bson:"user"`
	Name         string             `json:"name" bson:"name"`
	Image        string             `json:"image" bson:"image"`
	Brand        string             `json:"brand" bson:"brand"`
	Category     string             `json:"category" bson:"category"`
	Description  string             `json:"description" bson:"description"`
	Reviews      []Review           `json:"reviews" bson:"reviews"`
	Rating       float64            `json:"rating" bson:"rating"`
	NumReviews   int                `json:"numReviews" bson:"numReviews"`
	Price        float64            `json:"price" bson:"price"`
	CountInStock int                `json:"countInStock" bson:"countInStock"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// AddReview appends a review, enforcing one review per user, and
// recomputes the derived rating fields.
func (p *Product) AddReview(review Review) error {
	for _, r := range p.Reviews {
		if r.User == review.User {
			return apperr.New(apperr.Validation, "Product Already Reviewed")
		}
	}
	p.Reviews = append(p.Reviews, review)
	p.RecountRating()
	return nil
}

// RecountRating recomputes numReviews and the average rating from the
// embedded review list. Recomputed from scratch on every change rather
// than maintained incrementally.
func (p *Product) RecountRating() {
	p.NumReviews = len(p.Reviews)
	if p.NumReviews == 0 {
		p.Rating = 0
		return
	}
	total := 0.0
	for _, r := range p.Reviews {
		total += r.Rating
	}
	p.Rating = total / float64(p.NumReviews)
}

// ProductPatch carries an update where every field is optional. Only
// fields present in the request body are applied, so a partial update
// cannot accidentally clear the rest.
type ProductPatch struct {
	Name         *string  `json:"name"`
	Price        *float64 `json:"price"`
	Description  *string  `json:"description"`
	Image        *string  `json:"image"`
	Brand        *string  `json:"brand"`
	Category     *string  `json:"category"`
	CountInStock *int     `json:"countInStock"`
}

func (patch ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.CountInStock != nil {
		p.CountInStock = *patch.CountInStock
	}
}

// PageCount returns ceil(total/size).
func PageCount(total int64, size int) int {
	return int((total + int64(size) - 1) / int64(size))
}

// ListProducts returns one page of products matching the keyword
// (case-insensitive substring on name) along with the total page count.
func ListProducts(keyword string, page int) ([]Product, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}

	filter := bson.M{}
	if keyword != "" {
		filter["name"] = bson.M{"$regex": keyword, "$options": "i"}
	}

	count, err := database.ProductCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetLimit(PageSize).
		SetSkip(int64(PageSize * (page - 1)))

	cursor, err := database.ProductCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	products := []Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}
	return products, PageCount(count, PageSize), nil
}

// TopProducts returns the three highest rated products.
func TopProducts() ([]Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(3)

	cursor, err := database.ProductCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func CreateProduct(product Product) (Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	if product.Reviews == nil {
		product.Reviews = []Review{}
	}

	_, err := database.ProductCollection.InsertOne(ctx, product)
	if err != nil {
		return Product{}, err
	}
	return product, nil
}

func FindProductByID(id primitive.ObjectID) (Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var product Product
	err := database.ProductCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	return product, err
}

// SaveProduct writes the full product document back, bumping updatedAt.
func SaveProduct(product Product) (Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	product.UpdatedAt = time.Now()
	_, err := database.ProductCollection.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	return product, err
}

func DeleteProduct(id primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := database.ProductCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// AllProducts streams every product document. Used by the rating sweep
// and the seeder, not by request handlers.
func AllProducts(ctx context.Context) ([]Product, error) {
	cursor, err := database.ProductCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
