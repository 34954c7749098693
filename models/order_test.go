package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kevinlim605/TechShop/apperr"
)

func TestNewOrderRejectsEmptyItems(t *testing.T) {
	_, err := NewOrder(primitive.NewObjectID(), nil, ShippingAddress{}, "PayPal", 0, 0, 0, 0)
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.From(err).Kind)
	assert.Equal(t, "No Order Items", apperr.MessageOf(err))

	_, err = NewOrder(primitive.NewObjectID(), []OrderItem{}, ShippingAddress{}, "PayPal", 0, 0, 0, 0)
	require.Error(t, err)
}

func TestNewOrderStartsUnpaid(t *testing.T) {
	user := primitive.NewObjectID()
	items := []OrderItem{{Product: primitive.NewObjectID(), Name: "Camera", Price: 499.99, Qty: 1}}

	order, err := NewOrder(user, items, ShippingAddress{City: "Seoul"}, "PayPal", 499.99, 50, 0, 549.99)
	require.NoError(t, err)

	assert.Equal(t, user, order.User)
	assert.False(t, order.IsPaid)
	assert.False(t, order.IsDelivered)
	assert.Nil(t, order.PaidAt)
	assert.Equal(t, 549.99, order.TotalPrice)
}

func TestMarkPaidSnapshotsPaymentResult(t *testing.T) {
	order := Order{}
	now := time.Now()
	result := PaymentResult{
		ID:           "PAYID-123",
		Status:       "COMPLETED",
		UpdateTime:   "2021-02-10T01:21:58Z",
		EmailAddress: "buyer@example.com",
	}

	order.MarkPaid(result, now)

	assert.True(t, order.IsPaid)
	require.NotNil(t, order.PaidAt)
	assert.Equal(t, now, *order.PaidAt)
	assert.Equal(t, result, order.PaymentResult)
}

func TestMarkPaidOverwritesOnSecondCall(t *testing.T) {
	order := Order{}
	first := time.Now()
	order.MarkPaid(PaymentResult{ID: "first"}, first)

	second := first.Add(time.Hour)
	order.MarkPaid(PaymentResult{ID: "second"}, second)

	assert.Equal(t, "second", order.PaymentResult.ID)
	assert.Equal(t, second, *order.PaidAt)
}

func TestMarkDelivered(t *testing.T) {
	order := Order{}
	now := time.Now()
	order.MarkDelivered(now)

	assert.True(t, order.IsDelivered)
	require.NotNil(t, order.DeliveredAt)
	assert.Equal(t, now, *order.DeliveredAt)
}
