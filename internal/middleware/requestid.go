package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mindtree/internal/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestID makes sure every request carries a correlation id, on the gin
// context, on the request context for loggers, and on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
