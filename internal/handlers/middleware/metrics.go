package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/kitanda-backend/internal/infrastructure/metrics"
)

// Metrics registra contagem e duração das requisições.
// A rota é o padrão registrado no Gin, não o caminho bruto.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		done := m.RequestStarted()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		done(c.Request.Method, route, c.Writer.Status())
	}
}
