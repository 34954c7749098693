package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kevinlim605/TechShop/apperr"
	"github.com/kevinlim605/TechShop/middleware"
	"github.com/kevinlim605/TechShop/models"
)

type orderUser struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

// orderResponse joins the ordering user's name and email into the
// order document, shadowing the embedded user reference.
type orderResponse struct {
	models.Order
	User orderUser `json:"user"`
}

// AddOrderItems handles POST /api/orders.
func AddOrderItems(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var input struct {
		OrderItems      []models.OrderItem     `json:"orderItems"`
		ShippingAddress models.ShippingAddress `json:"shippingAddress"`
		PaymentMethod   string                 `json:"paymentMethod"`
		ItemsPrice      float64                `json:"itemsPrice"`
		TaxPrice        float64                `json:"taxPrice"`
		ShippingPrice   float64                `json:"shippingPrice"`
		TotalPrice      float64                `json:"totalPrice"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Validation, "Invalid input", err))
		return
	}

	order, err := models.NewOrder(user.ID, input.OrderItems, input.ShippingAddress,
		input.PaymentMethod, input.ItemsPrice, input.TaxPrice, input.ShippingPrice, input.TotalPrice)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	created, err := models.CreateOrder(order)
	if err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to create order", err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetOrderByID handles GET /api/orders/:id.
func GetOrderByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		apperr.Write(c, apperr.New(apperr.NotFound, "Order Not Found"))
		return
	}

	order, err := models.FindOrderByID(id)
	if err != nil {
		apperr.Write(c, apperr.New(apperr.NotFound, "Order Not Found"))
		return
	}

	response := orderResponse{Order: order}
	if user, err := models.FindUserByID(order.User); err == nil {
		response.User = orderUser{ID: user.ID, Name: user.Name, Email: user.Email}
	}
	c.JSON(http.StatusOK, response)
}

// UpdateOrderToPaid handles PUT /api/orders/:id/pay. Calling it twice
// overwrites the payment snapshot and timestamp both times.
func UpdateOrderToPaid(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		apperr.Write(c, apperr.New(apperr.NotFound, "Order Not Found"))
		return
	}

	var input struct {
		ID         string `json:"id"`
		Status     string `json:"status"`
		UpdateTime string `json:"update_time"`
		Payer      struct {
			EmailAddress string `json:"email_address"`
		} `json:"payer"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Validation, "Invalid input", err))
		return
	}

	order, err := models.FindOrderByID(id)
	if err != nil {
		apperr.Write(c, apperr.New(apperr.NotFound, "Order Not Found"))
		return
	}

	order.MarkPaid(models.PaymentResult{
		ID:           input.ID,
		Status:       input.Status,
		UpdateTime:   input.UpdateTime,
		EmailAddress: input.Payer.EmailAddress,
	}, time.Now())

	updated, err := models.SaveOrder(order)
	if err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to update order", err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateOrderToDelivered handles PUT /api/orders/:id/deliver (admin).
func UpdateOrderToDelivered(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		apperr.Write(c, apperr.New(apperr.NotFound, "Order Not Found"))
		return
	}

	order, err := models.FindOrderByID(id)
	if err != nil {
		apperr.Write(c, apperr.New(apperr.NotFound, "Order Not Found"))
		return
	}

	order.MarkDelivered(time.Now())

	updated, err := models.SaveOrder(order)
	if err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to update order", err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetMyOrders handles GET /api/orders/myorders.
func GetMyOrders(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	orders, err := models.ListOrdersByUser(user.ID)
	if err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to fetch orders", err))
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrders handles GET /api/orders (admin).
func GetOrders(c *gin.Context) {
	orders, err := models.ListOrders()
	if err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to fetch orders", err))
		return
	}
	c.JSON(http.StatusOK, orders)
}
