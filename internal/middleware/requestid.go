package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDKey is the gin context key for the request ID.
	RequestIDKey = "request_id"

	// RequestIDHeader is the HTTP header used to propagate the request ID.
	RequestIDHeader = "X-Request-ID"
)

// RequestID tags every request with a fresh server-generated UUID and
// echoes it in the response header. A client-supplied X-Request-ID is
// never trusted as the canonical ID; it is kept alongside under
// "client_request_id" so logs can still be correlated with the caller's
// view.
func RequestID(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		if fromClient := c.GetHeader(RequestIDHeader); fromClient != "" {
			c.Set("client_request_id", fromClient)
			log.WithFields(logrus.Fields{
				"request_id":        id,
				"client_request_id": fromClient,
			}).Debug("client request ID recorded")
		}

		c.Next()
	}
}
