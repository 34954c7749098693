package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kevinlim605/TechShop/apperr"
)

func TestAddReviewRecomputesDerivedFields(t *testing.T) {
	p := Product{}

	require.NoError(t, p.AddReview(Review{User: primitive.NewObjectID(), Rating: 4}))
	assert.Equal(t, 1, p.NumReviews)
	assert.Equal(t, 4.0, p.Rating)

	require.NoError(t, p.AddReview(Review{User: primitive.NewObjectID(), Rating: 5}))
	require.NoError(t, p.AddReview(Review{User: primitive.NewObjectID(), Rating: 3}))

	assert.Equal(t, 3, p.NumReviews)
	assert.Equal(t, 4.0, p.Rating)
	assert.Len(t, p.Reviews, 3)
}

func TestAddReviewRejectsSecondReviewBySameUser(t *testing.T) {
	user := primitive.NewObjectID()
	p := Product{}

	require.NoError(t, p.AddReview(Review{User: user, Rating: 5}))

	err := p.AddReview(Review{User: user, Rating: 1})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.From(err).Kind)
	assert.Equal(t, "Product Already Reviewed", apperr.MessageOf(err))

	// list must be unchanged
	assert.Len(t, p.Reviews, 1)
	assert.Equal(t, 1, p.NumReviews)
	assert.Equal(t, 5.0, p.Rating)
}

func TestRecountRatingEmptyList(t *testing.T) {
	p := Product{Rating: 4.5, NumReviews: 9}
	p.RecountRating()
	assert.Equal(t, 0, p.NumReviews)
	assert.Equal(t, 0.0, p.Rating)
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, PageSize))
	assert.Equal(t, 1, PageCount(1, PageSize))
	assert.Equal(t, 1, PageCount(10, PageSize))
	assert.Equal(t, 2, PageCount(11, PageSize))
	assert.Equal(t, 5, PageCount(45, PageSize))
}

func TestProductPatchAppliesOnlyPresentFields(t *testing.T) {
	p := Product{
		Name:         "Airpods",
		Brand:        "Apple",
		Category:     "Electronics",
		Description:  "Bluetooth earbuds",
		Image:        "/images/airpods.jpg",
		Price:        89.99,
		CountInStock: 7,
	}

	name := "Airpods Pro"
	price := 129.99
	patch := ProductPatch{Name: &name, Price: &price}
	patch.Apply(&p)

	assert.Equal(t, "Airpods Pro", p.Name)
	assert.Equal(t, 129.99, p.Price)

	// absent fields stay untouched
	assert.Equal(t, "Apple", p.Brand)
	assert.Equal(t, "Electronics", p.Category)
	assert.Equal(t, "Bluetooth earbuds", p.Description)
	assert.Equal(t, "/images/airpods.jpg", p.Image)
	assert.Equal(t, 7, p.CountInStock)
}

func TestProductPatchCanZeroFieldsExplicitly(t *testing.T) {
	p := Product{CountInStock: 5}

	zero := 0
	patch := ProductPatch{CountInStock: &zero}
	patch.Apply(&p)

	assert.Equal(t, 0, p.CountInStock)
}
