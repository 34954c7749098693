package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kevinlim605/TechShop/apperr"
	"github.com/kevinlim605/TechShop/middleware"
	"github.com/kevinlim605/TechShop/models"
)

// GetProducts handles GET /api/products?keyword=&pageNumber=.
func GetProducts(c *gin.Context) {
	keyword := c.Query("keyword")
	page, err := strconv.Atoi(c.Query("pageNumber"))
	if err != nil || page < 1 {
		page = 1
	}

	products, pages, err := models.ListProducts(keyword, page)
	if err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to fetch products", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"page":     page,
		"pages":    pages,
	})
}

// GetTopProducts handles GET /api/products/top.
func GetTopProducts(c *gin.Context) {
	products, err := models.TopProducts()
	if err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to fetch products", err))
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByID handles GET /api/products/:id.
func GetProductByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		apperr.Write(c, apperr.New(apperr.NotFound, "Product Not Found"))
		return
	}

	product, err := models.FindProductByID(id)
	if err != nil {
		apperr.Write(c, apperr.New(apperr.NotFound, "Product Not Found"))
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/products (admin). The document is a
// placeholder ready for a subsequent edit.
func CreateProduct(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	product, err := models.CreateProduct(models.Product{
		User:         user.ID,
		Name:         "Sample Name",
		Image:        "/images/sample.jpg",
		Brand:        "Sample brand",
		Category:     "Sample category",
		Description:  "Sample description",
		Price:        0,
		CountInStock: 0,
	})
	if err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to create product", err))
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/products/:id (admin). Fields absent
// from the body are left unchanged.
func UpdateProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		apperr.Write(c, apperr.New(apperr.NotFound, "Product Not Found"))
		return
	}

	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Validation, "Invalid input", err))
		return
	}

	product, err := models.FindProductByID(id)
	if err != nil {
		apperr.Write(c, apperr.New(apperr.NotFound, "Product Not Found"))
		return
	}

	patch.Apply(&product)

	updated, err := models.SaveProduct(product)
	if err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to update product", err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProduct handles DELETE /api/products/:id (admin).
func DeleteProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		apperr.Write(c, apperr.New(apperr.NotFound, "Product Not Found"))
		return
	}

	count, err := models.DeleteProduct(id)
	if err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to remove product", err))
		return
	}
	if count == 0 {
		apperr.Write(c, apperr.New(apperr.NotFound, "Product Not Found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product Removed"})
}

// CreateProductReview handles POST /api/products/:id/reviews. One
// review per (product, user); rating fields recomputed from scratch.
func CreateProductReview(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		apperr.Write(c, apperr.New(apperr.NotFound, "Product Not Found"))
		return
	}

	var input struct {
		Rating  float64 `json:"rating" binding:"required,min=1,max=5"`
		Comment string  `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Validation, "Invalid input", err))
		return
	}

	product, err := models.FindProductByID(id)
	if err != nil {
		apperr.Write(c, apperr.New(apperr.NotFound, "Product Not Found"))
		return
	}

	review := models.Review{
		ID:        primitive.NewObjectID(),
		User:      user.ID,
		Name:      user.Name,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}
	if err := product.AddReview(review); err != nil {
		apperr.Write(c, err)
		return
	}

	if _, err := models.SaveProduct(product); err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to save review", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review Added"})
}
