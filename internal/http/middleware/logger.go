package middleware

import (
	"fmt"
	"time"

	"shuttlebook/internal/utils"

	"github.com/gin-gonic/gin"
)

// Logger emits one access-log line per request in the LogEvent convention,
// carrying the request id assigned by RequestID.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		utils.LogEvent(GetRequestID(c), "http", "request",
			fmt.Sprintf("%s %s status=%d latency_ms=%.3f ip=%s",
				c.Request.Method,
				c.Request.URL.Path,
				c.Writer.Status(),
				float64(latency.Microseconds())/1000.0,
				c.ClientIP(),
			))
	}
}
