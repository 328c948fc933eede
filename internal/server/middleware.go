package server

import (
	"time"

	"car-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the context key under which the per-request id is stored.
const RequestIDKey = "request_id"

// RequestLoggerMiddleware tags every request with an id and logs it with
// timing once handled.
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	requestID := uuid.NewString()
	c.Set(RequestIDKey, requestID)
	c.Writer.Header().Set("X-Request-ID", requestID)

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	})
}
