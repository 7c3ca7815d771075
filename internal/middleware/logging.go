package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/internal/logger"
	"fintrack/internal/uuid"
)

const (
	requestIDKey    = "requestID"
	requestIDHeader = "X-Request-ID"
)

// RequestLogging logs each request with its request ID, status and latency.
// An incoming X-Request-ID is reused; otherwise a UUIDv7 is generated.
// Server errors log at error level and client errors at warn level.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		log := logger.Named("http")
		switch {
		case status >= http.StatusInternalServerError:
			log.Errorw("request", fields...)
		case status >= http.StatusBadRequest:
			log.Warnw("request", fields...)
		default:
			log.Infow("request", fields...)
		}
	}
}
