package utils

import (
	"errors"
	"net/http"
	"time"

	"oraconsoleapi/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InitLoggerWithConfig initializes the structured logger with full config.
func InitLoggerWithConfig(filePath, level string, maxSize, maxBackups, maxAge int, compress bool) {
	logLevel := logger.ParseLogLevel(level)
	logger.InitWithConfig(filePath, logLevel, maxSize, maxBackups, maxAge, compress)
	logger.Infof("Logger initialized with level %s at: %s", level, filePath)
}

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// LoggerMiddleware tags each request with an id (the caller's X-Request-ID
// when present) and logs it at a level derived from the status code.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("request_id", reqID)
		c.Header(RequestIDHeader, reqID)

		c.Next()
		elapsed := time.Since(start)
		status := c.Writer.Status()

		if status >= 500 {
			logger.Errorf("HTTP %s %s - Status: %d, Duration: %v, IP: %s, Request: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP(), reqID)
		} else if status >= 400 {
			logger.Warnf("HTTP %s %s - Status: %d, Duration: %v, IP: %s, Request: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP(), reqID)
		} else {
			logger.Debugf("HTTP %s %s - Status: %d, Duration: %v, IP: %s, Request: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP(), reqID)
		}
	}
}

// JSONResponse sends a JSON response with the specified HTTP status code.
func JSONResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// ErrorDetail is the error body read by console clients.
type ErrorDetail struct {
	Detail string `json:"detail" example:"No active connection"`
}

// StatusFor maps an error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrNoActiveConnection), errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConnectivity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse logs err and sends it as {"detail": ...} with the mapped status.
func ErrorResponse(c *gin.Context, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Errorf("API Error: %v", err)
	} else {
		logger.Warnf("API Error: %v", err)
	}
	c.AbortWithStatusJSON(status, ErrorDetail{Detail: Detail(err)})
}
