package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDKey = "requestID"

// RequestID assigns a correlation id to every request. The id is echoed
// back in the X-Request-ID header and stamped on every log line via
// Logger; services receive the logger entry explicitly rather than
// reading ambient state.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// Logger builds the request-scoped log entry carrying the correlation id.
func Logger(c *gin.Context) *logrus.Entry {
	id, _ := c.Get(requestIDKey)
	idStr, _ := id.(string)
	return logrus.WithFields(logrus.Fields{
		"request_id": idStr,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
	})
}
