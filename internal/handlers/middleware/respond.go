package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/kitanda-backend/internal/infrastructure/i18n"
)

// abortWithError encerra a requisição com o envelope de erro traduzido
func abortWithError(c *gin.Context, status int, messageKey string) {
	message := messageKey
	if value, ok := c.Get(I18nServiceContextKey); ok {
		if service, ok := value.(*i18n.Service); ok {
			message = service.T(c.GetString(LanguageContextKey), messageKey)
		}
	}

	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": message})
}
