// Package httputil provides shared HTTP response helpers.
package httputil

import "github.com/gin-gonic/gin"

// errorBody is the one error envelope every surface of the API speaks.
type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// RespondError writes the standardized JSON error envelope and aborts the
// request. The request ID comes from the gin context when the request ID
// middleware has run; responses written before it simply omit the field.
func RespondError(c *gin.Context, status int, code, message string) {
	body := errorBody{Code: code, Message: message}
	if rid, ok := c.Get("request_id"); ok {
		body.RequestID, _ = rid.(string)
	}
	c.AbortWithStatusJSON(status, body)
}
