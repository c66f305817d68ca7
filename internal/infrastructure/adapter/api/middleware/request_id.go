package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/database"
)

// RequestIDHeader carries the request id in and out
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID reuses the caller's X-Request-ID or generates one, echoes it in the
// response and attaches it to the request context for SQL logging.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(database.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}

// RequestIDFrom returns the id assigned by RequestID, or "" outside it
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
