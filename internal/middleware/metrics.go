package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/myebiez/daur-cuan-app/internal/metrics"
)

// Metrics records request counts and latencies for every route. Paths are
// labeled with the matched route pattern, not the raw URL, to keep the label
// cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
