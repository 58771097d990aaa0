// Package middleware holds the shared gin middleware for the HTTP transport.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

// ContextKeyRequestID is the gin context key under which the request ID is
// stored.
const ContextKeyRequestID = "request_id"

// RequestID tags every response with an X-Request-ID header. An incoming
// request ID is propagated; otherwise a fresh UUID is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}
