package server

import (
	"auction-marketplace/utils"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs every request with timing and client identity.
// Money moves through these endpoints, so the client IP stays in the log line
// for audit trails.
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":    c.Request.Method,
		"path":      c.Request.URL.Path,
		"status":    c.Writer.Status(),
		"client_ip": c.ClientIP(),
		"latency":   time.Since(start).String(),
	})
}
