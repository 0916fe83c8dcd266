// file: internal/server/logger.go
// version: 2.0.0
// guid: 1d2e3f4a-5b6c-7d8e-9f0a-1b2c3d4e5f6a

package server

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jdfalk/folio/internal/server/middleware"
)

// OperationLogger tracks the lifecycle of a handler operation
type OperationLogger struct {
	handler    string
	method     string
	path       string
	startTime  time.Time
	requestID  string
	resourceID string
	details    map[string]any
}

// NewOperationLogger creates a new operation logger
func NewOperationLogger(handler, method, path, requestID string) *OperationLogger {
	return &OperationLogger{
		handler:   handler,
		method:    method,
		path:      path,
		startTime: time.Now(),
		requestID: requestID,
		details:   make(map[string]any),
	}
}

// newOperationLogger builds an OperationLogger from the request.
func newOperationLogger(c *gin.Context, handler string) *OperationLogger {
	return NewOperationLogger(handler, c.Request.Method, c.Request.URL.Path, middleware.GetRequestID(c))
}

// SetResourceID sets the resource ID being operated on
func (ol *OperationLogger) SetResourceID(id string) {
	ol.resourceID = id
}

// AddDetail adds a contextual detail to the operation log
func (ol *OperationLogger) AddDetail(key string, value any) {
	ol.details[key] = value
}

func (ol *OperationLogger) suffix() string {
	s := ""
	if ol.resourceID != "" {
		s = fmt.Sprintf(" (resource: %s)", ol.resourceID)
	}
	if len(ol.details) > 0 {
		s = fmt.Sprintf("%s %v", s, ol.details)
	}
	return s
}

// LogSuccess logs the successful completion of the operation
func (ol *OperationLogger) LogSuccess(statusCode int) {
	duration := time.Since(ol.startTime)
	log.Printf("[DEBUG] [SUCCESS] %s %s (%d) in %v%s [request-id: %s]",
		ol.method, ol.path, statusCode, duration, ol.suffix(), ol.requestID)
}

// LogError logs an error that occurred during the operation
func (ol *OperationLogger) LogError(statusCode int, err error) {
	duration := time.Since(ol.startTime)
	log.Printf("[ERROR] %s %s (%d) in %v: %v%s [request-id: %s]",
		ol.method, ol.path, statusCode, duration, err, ol.suffix(), ol.requestID)
}

// LogWarning logs a warning message
func (ol *OperationLogger) LogWarning(message string) {
	log.Printf("[WARN] %s: %s [request-id: %s]", ol.handler, message, ol.requestID)
}

// Elapsed reports time since the operation started.
func (ol *OperationLogger) Elapsed() time.Duration {
	return time.Since(ol.startTime)
}

// RequestLogger provides request-level logging
type RequestLogger struct {
	requestID string
	clientIP  string
	method    string
	path      string
	startTime time.Time
}

// NewRequestLogger creates a new request logger
func NewRequestLogger(requestID, clientIP, method, path string) *RequestLogger {
	return &RequestLogger{
		requestID: requestID,
		clientIP:  clientIP,
		method:    method,
		path:      path,
		startTime: time.Now(),
	}
}

// LogResponse logs the response sent
func (rl *RequestLogger) LogResponse(statusCode int, responseSize int) {
	duration := time.Since(rl.startTime)
	log.Printf("[INFO] %s %s -> %d (%d bytes) in %v from %s [request-id: %s]",
		rl.method, rl.path, statusCode, responseSize, duration, rl.clientIP, rl.requestID)
}

// requestLogging replaces gin's default access log with the bracketed format
// used everywhere else.
func requestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		rl := NewRequestLogger(middleware.GetRequestID(c), c.ClientIP(), c.Request.Method, c.Request.URL.Path)
		c.Next()
		rl.LogResponse(c.Writer.Status(), c.Writer.Size())
	}
}

// LogServiceCacheHit logs a service cache hit
func LogServiceCacheHit(serviceName string, key string) {
	log.Printf("[DEBUG] [CACHE-HIT] %s: %s", serviceName, key)
}

// LogServiceCacheMiss logs a service cache miss
func LogServiceCacheMiss(serviceName string, key string) {
	log.Printf("[DEBUG] [CACHE-MISS] %s: %s", serviceName, key)
}
