package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kevinlim605/TechShop/apperr"
	"github.com/kevinlim605/TechShop/models"
	"github.com/kevinlim605/TechShop/utils"
)

// lookupUser is a seam so the token path can be tested without a live
// database.
var lookupUser = models.FindUserByID

// Protect verifies the bearer token and attaches the referenced user
// (password excluded) to the request context. Hard fail, no anonymous
// fallback.
func Protect() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apperr.Write(c, apperr.New(apperr.Auth, "Not Authorized, No Token"))
			return
		}

		id, err := utils.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			apperr.Write(c, apperr.Wrap(apperr.Auth, "Not Authorized, Token Failed", err))
			return
		}

		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			apperr.Write(c, apperr.Wrap(apperr.Auth, "Not Authorized, Token Failed", err))
			return
		}

		user, err := lookupUser(objID)
		if err != nil {
			apperr.Write(c, apperr.Wrap(apperr.Auth, "Not Authorized, Token Failed", err))
			return
		}
		user.Password = ""

		c.Set("user", user)
		c.Next()
	}
}

// Admin gates a route to admin users. Must be sequenced after Protect.
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			apperr.Write(c, apperr.New(apperr.Auth, "Not Authorized As An Admin"))
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user Protect attached to the request.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
