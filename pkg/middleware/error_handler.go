package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"spaceshare-landing/pkg/apperror"
	"spaceshare-landing/pkg/logger"
	"spaceshare-landing/pkg/response"
)

// ErrorHandler renders errors attached to the gin context as response
// envelopes. AppErrors keep their status and message; anything else is
// logged and answered with a generic 500 so internals never leak.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			var fields interface{}
			if len(appErr.Fields) > 0 {
				fields = appErr.Fields
			}
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"status", appErr.Code,
					"error", appErr.Err,
					"path", c.FullPath(),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, fields)
			return
		}

		logger.Log.Error("unexpected error", "error", err, "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
