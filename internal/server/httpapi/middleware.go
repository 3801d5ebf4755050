package httpapi

import (
	"time"

	"github.com/dmitrijs2005/dilbilim/internal/common"
	"github.com/dmitrijs2005/dilbilim/internal/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestID reuses the caller's X-Request-ID or mints one, and echoes it back.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(common.RequestIDHeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(common.RequestIDHeaderName, id)
		c.Next()
	}
}

func accessLog(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(requestIDKey),
		}

		if status >= 500 {
			logger.Error(c.Request.Context(), "request", args...)
			return
		}
		logger.Info(c.Request.Context(), "request", args...)
	}
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, common.RequestIDHeaderName)
	cfg.ExposeHeaders = []string{common.RequestIDHeaderName}
	return cors.New(cfg)
}
