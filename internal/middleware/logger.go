// Package middleware carries the request-scoped plumbing for the ingestion
// API: request IDs, access logging, and panic recovery.
package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID tags every request with an ID so upload log lines can be tied
// back to a client call. An incoming X-Request-ID is honored; otherwise a
// fresh UUID is minted. The ID is echoed on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// Logger writes one access line per request: method, path, status, response
// size, latency, and the request ID. Health probes are not logged; they fire
// often enough to drown the upload traffic.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/healthz" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		log.Printf("http: %s %s -> %d (%dB, %s) id=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).Round(time.Millisecond),
			c.GetString(requestIDKey),
		)
	}
}

// Recovery converts a panic into a 500 carrying the API's standard error
// envelope rather than an empty body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec interface{}) {
		log.Printf("http: panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, rec)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   gin.H{"code": "INTERNAL_ERROR", "message": "internal server error"},
		})
	})
}
