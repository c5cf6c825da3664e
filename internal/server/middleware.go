package server

import (
	"time"

	"fincoach/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestID tags every request with an id, honoring one supplied by the
// caller so frontend traces line up with server logs.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// requestLogger emits one structured line per request.
func requestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("HTTP request",
			logging.Field{Key: "request_id", Value: c.GetString("request_id")},
			logging.Field{Key: "method", Value: c.Request.Method},
			logging.Field{Key: "path", Value: c.Request.URL.Path},
			logging.Field{Key: "status", Value: c.Writer.Status()},
			logging.Field{Key: "duration_ms", Value: time.Since(start).Milliseconds()},
		)
	}
}
