package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger creates a Gin middleware that logs one structured line per
// request. Health probes are logged at debug so scrape schedules don't
// drown the log.
func RequestLogger(logger *logrus.Logger, listener string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := logrus.Fields{
			"listener":   listener,
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}
		entry := logger.WithFields(fields)
		if path == "/health" || path == "/metrics" {
			entry.Debug("request handled")
			return
		}
		entry.Info("request handled")
	}
}
