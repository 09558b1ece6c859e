package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver records served HTTP requests.
type RequestObserver interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
}

// Metrics records request counts and latencies labelled by route pattern.
func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observer.ObserveHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
