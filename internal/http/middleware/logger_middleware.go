package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
)

// LoggerMiddleware logs every HTTP request in structured form
func LoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetString(ContextRequestID)
		ctx := c.Request.Context()
		if requestID != "" {
			ctx = context.WithValue(ctx, logger.RequestIDKey, requestID)
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()

		entry := log.WithRequest(
			ctx,
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start).String(),
			c.Writer.Size(),
		)
		if c.Writer.Status() >= 500 {
			entry.Error("HTTP Request Processed")
			return
		}
		entry.Info("HTTP Request Processed")
	}
}
