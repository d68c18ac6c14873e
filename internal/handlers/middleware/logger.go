package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/kitanda-backend/internal/domain/ports"
)

// RequestLogger registra cada requisição concluída
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		log := logger.With("request_id", c.GetString(RequestIDContextKey))
		if claims, ok := Identity(c); ok {
			log = log.With("user_id", claims.UserID)
		}
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		switch {
		case status >= 500:
			log.Error("request failed", args...)
		case status >= 400:
			log.Warn("request rejected", args...)
		default:
			log.Info("request completed", args...)
		}
	}
}
