package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kevinlim605/TechShop/config"
)

// GetPayPalClientID handles GET /api/config/paypal. The client id is
// public; the payment SDK itself runs client-side.
func GetPayPalClientID(c *gin.Context) {
	c.String(http.StatusOK, config.Get().PayPalClientID)
}
