package apperr

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/kevinlim605/TechShop/config"
)

// Write converts an error into the JSON error body and aborts the
// request. The stack field is omitted in production builds.
func Write(c *gin.Context, err error) {
	e := From(err)
	body := gin.H{"message": e.Message}
	if !config.Get().IsProduction() {
		body["stack"] = string(debug.Stack())
	}
	c.AbortWithStatusJSON(e.Kind.Status(), body)
}
