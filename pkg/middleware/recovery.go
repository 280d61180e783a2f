package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spaceshare-landing/pkg/logger"
	"spaceshare-landing/pkg/response"
)

// Recovery turns panics into the same error envelope every other response
// uses, instead of gin's bare 500.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Error("panic recovered", "error", recovered, "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		c.Abort()
	})
}
