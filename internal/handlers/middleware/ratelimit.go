package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/kitanda-backend/internal/domain/errors"
	"github.com/rafabene/kitanda-backend/internal/domain/ports"
)

// Limiter decide se mais uma requisição da chave pode passar
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit limita requisições por IP e rota. Limiter nil desativa o limite;
// erros do limiter liberam a requisição.
func RateLimit(limiter Limiter, logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP() + ":" + c.FullPath()
		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn("rate limiter unavailable", "error", err, "path", c.FullPath())
		}

		if !allowed {
			abortWithError(c, http.StatusTooManyRequests, domainerrors.ErrTooManyRequests.Error())
			return
		}

		c.Next()
	}
}
