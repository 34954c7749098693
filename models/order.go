package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kevinlim605/TechShop/apperr"
	"github.com/kevinlim605/TechShop/database"
)

type OrderItem struct {
	Product primitive.ObjectID `json:"product" bson:"product"`
	Name    string             `json:"name" bson:"name"`
	Image   string             `json:"image" bson:"image"`
	Price   float64            `json:"price" bson:"price"`
	Qty     int                `json:"qty" bson:"qty"`
}

type ShippingAddress struct {
	Address    string `json:"address" bson:"address"`
	City       string `json:"city" bson:"city"`
	PostalCode string `json:"postalCode" bson:"postalCode"`
	Country    string `json:"country" bson:"country"`
}

// PaymentResult snapshots the external gateway's callback payload.
type PaymentResult struct {
	ID           string `json:"id" bson:"id"`
	Status       string `json:"status" bson:"status"`
	UpdateTime   string `json:"update_time" bson:"update_time"`
	EmailAddress string `json:"email_address" bson:"email_address"`
}

type Order struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	User            primitive.ObjectID `json:"user" bson:"user"`
	OrderItems      []OrderItem        `json:"orderItems" bson:"orderItems"`
	ShippingAddress ShippingAddress    `json:"shippingAddress" bson:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod" bson:"paymentMethod"`
	PaymentResult   PaymentResult      `json:"paymentResult" bson:"paymentResult"`
	ItemsPrice      float64            `json:"itemsPrice" bson:"itemsPrice"`
	TaxPrice        float64            `json:"taxPrice" bson:"taxPrice"`
	ShippingPrice   float64            `json:"shippingPrice" bson:"shippingPrice"`
	TotalPrice      float64            `json:"totalPrice" bson:"totalPrice"`
	IsPaid          bool               `json:"isPaid" bson:"isPaid"`
	PaidAt          *time.Time         `json:"paidAt,omitempty" bson:"paidAt,omitempty"`
	IsDelivered     bool               `json:"isDelivered" bson:"isDelivered"`
	DeliveredAt     *time.Time         `json:"deliveredAt,omitempty" bson:"deliveredAt,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// NewOrder validates and builds an unpaid order from a cart snapshot.
func NewOrder(user primitive.ObjectID, items []OrderItem, shipping ShippingAddress,
	paymentMethod string, itemsPrice, taxPrice, shippingPrice, totalPrice float64) (Order, error) {

	if len(items) == 0 {
		return Order{}, apperr.New(apperr.Validation, "No Order Items")
	}

	return Order{
		User:            user,
		OrderItems:      items,
		ShippingAddress: shipping,
		PaymentMethod:   paymentMethod,
		ItemsPrice:      itemsPrice,
		TaxPrice:        taxPrice,
		ShippingPrice:   shippingPrice,
		TotalPrice:      totalPrice,
	}, nil
}

// MarkPaid records a payment result. Not idempotent: a second call
// overwrites the snapshot and timestamp.
func (o *Order) MarkPaid(result PaymentResult, now time.Time) {
	o.IsPaid = true
	o.PaidAt = &now
	o.PaymentResult = result
}

func (o *Order) MarkDelivered(now time.Time) {
	o.IsDelivered = true
	o.DeliveredAt = &now
}

func CreateOrder(order Order) (Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt

	_, err := database.OrderCollection.InsertOne(ctx, order)
	if err != nil {
		return Order{}, err
	}
	return order, nil
}

func FindOrderByID(id primitive.ObjectID) (Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var order Order
	err := database.OrderCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	return order, err
}

// SaveOrder writes the full order document back, bumping updatedAt.
func SaveOrder(order Order) (Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	order.UpdatedAt = time.Now()
	_, err := database.OrderCollection.ReplaceOne(ctx, bson.M{"_id": order.ID}, order)
	return order, err
}

func ListOrdersByUser(user primitive.ObjectID) ([]Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.OrderCollection.Find(ctx, bson.M{"user": user})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func ListOrders() ([]Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.OrderCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
