package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ContextRequestIDKey is the gin context key holding the request id.
const ContextRequestIDKey = "requestID"

const requestIDHeader = "X-Request-ID"

// RequestID attaches an id to every request, honouring one supplied by the
// caller, and echoes it back in the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs one line per completed request.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": c.GetString(ContextRequestIDKey),
		}).Info("request completed")
	}
}

// respondOK writes a success payload.
func respondOK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// respondError writes an expected-failure payload. The API contract reports
// validation and lookup failures in the body with HTTP 200, so existing
// clients only ever inspect the "error" field.
func respondError(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"error": message})
}

// respondStoreError logs an unexpected persistence failure and surfaces its
// message to the caller. Only the message crosses the API boundary, never the
// error value itself.
func respondStoreError(c *gin.Context, log *logrus.Logger, err error) {
	log.WithFields(logrus.Fields{
		"path":       c.Request.URL.Path,
		"request_id": c.GetString(ContextRequestIDKey),
	}).WithError(err).Error("store operation failed")
	respondError(c, err.Error())
}
