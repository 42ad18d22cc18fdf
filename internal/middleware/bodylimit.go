package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodySize caps request bodies at maxBytes. Reads past the cap fail
// inside the handler's JSON bind, which surfaces as a plain bad-request
// rather than an unbounded allocation.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if body := c.Request.Body; body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, body, maxBytes)
		}
		c.Next()
	}
}
