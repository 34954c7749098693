package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kevinlim605/TechShop/apperr"
	"github.com/kevinlim605/TechShop/logger"
)

// NotFound handles requests that matched no route.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		apperr.Write(c, apperr.New(apperr.NotFound, "Not Found - "+c.Request.URL.Path))
	}
}

// Recovery converts panics into the standard error body instead of
// killing the process.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.L().Error("panic recovered", zap.Any("panic", recovered))
		apperr.Write(c, apperr.New(apperr.Internal, fmt.Sprint(recovered)))
	})
}
