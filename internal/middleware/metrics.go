// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"comment-service/internal/metrics"
)

// MetricsPath is where the Prometheus handler is mounted.
const MetricsPath = "/metrics"

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP
// requests, labelled by route template rather than raw path so that article
// ids do not explode label cardinality. Requests to MetricsPath and to any
// of skipPaths are not recorded.
func Metrics(skipPaths ...string) gin.HandlerFunc {
	skip := map[string]struct{}{MetricsPath: {}}
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.FullPath()]; ok {
			c.Next()
			return
		}

		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}
