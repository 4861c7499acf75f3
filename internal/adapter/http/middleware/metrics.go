package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPRecorder receives per-request measurements.
type HTTPRecorder interface {
	ObserveHTTP(method, path string, status int, duration time.Duration)
}

// HTTPMetrics records every request by matched route. Unmatched requests
// are grouped under "unmatched" to keep label cardinality bounded.
func HTTPMetrics(rec HTTPRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		rec.ObserveHTTP(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
