package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/routegrid/routegrid/internal/metrics"
)

// PrometheusMiddleware records duration and count for every request,
// labelled by method, route pattern, and status. The route pattern (not
// the raw path) keeps label cardinality bounded; requests that match no
// route land under "unknown".
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.RequestDuration.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		metrics.RequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
	}
}
