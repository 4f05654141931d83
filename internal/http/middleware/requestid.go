package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"adlot.app/inventory/common/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns each request an ID, honoring one supplied by the
// caller, and echoes it back on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{RequestID: &requestID})
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, requestID)

		c.Next()
	}
}
