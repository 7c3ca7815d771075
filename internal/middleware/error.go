package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
)

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into consistent JSON error responses. AppErrors are returned with
// their code, message and field details; unexpected errors are logged and
// return a generic internal error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Internal != nil {
				logger.Get().Errorw("app error",
					"code", appErr.Code,
					"message", appErr.Message,
					"internal", appErr.Internal.Error(),
					"path", c.Request.URL.Path,
				)
			}
			body := gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			}
			if len(appErr.Fields) > 0 {
				body["fields"] = appErr.Fields
			}
			c.JSON(appErr.StatusCode, gin.H{"error": body})
			return
		}

		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
			"error": gin.H{
				"code":    apperrors.ErrInternalServer.Code,
				"message": apperrors.ErrInternalServer.Message,
			},
		})
	}
}

// NotFound answers unknown routes with the standard error body.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrNotFound, "No route for "+c.Request.Method+" "+c.Request.URL.Path))
	}
}
