package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request once the handler chain has run.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		prefix := "✅"
		switch {
		case status >= 500:
			prefix = "❌"
		case status >= 400:
			prefix = "⚠️ "
		}
		log.Printf("%s %s %s %s %d %s",
			prefix, c.Request.Method, c.Request.URL.Path, c.ClientIP(), status, time.Since(start))
	}
}
