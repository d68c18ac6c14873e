package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/kitanda-backend/internal/domain/errors"
	"github.com/rafabene/kitanda-backend/internal/domain/ports"
)

const (
	// IdentityContextKey guarda as claims da requisição autenticada
	IdentityContextKey = "identity"
	// AuthCookieName é o cookie de sessão com o token
	AuthCookieName = "auth-token"
	// AuthCookieMaxAge acompanha a validade do token
	AuthCookieMaxAge = 7 * 24 * time.Hour

	bearerPrefix = "Bearer "
)

// ResolveIdentity procura o token no header Authorization e depois no cookie.
// Token ausente ou inválido resulta em identidade ausente, nunca em erro.
func ResolveIdentity(r *http.Request, tokens ports.TokenService) (ports.Claims, bool) {
	token := ""
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, bearerPrefix) {
		token = strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}

	if token == "" {
		if cookie, err := r.Cookie(AuthCookieName); err == nil {
			token = cookie.Value
		}
	}

	if token == "" {
		return ports.Claims{}, false
	}

	return tokens.Verify(token)
}

// Authenticate resolve a identidade e a guarda no contexto, sem abortar
func Authenticate(tokens ports.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := ResolveIdentity(c.Request, tokens); ok {
			c.Set(IdentityContextKey, claims)
		}
		c.Next()
	}
}

// RequireIdentity responde 401 quando a requisição não tem identidade
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := Identity(c); !ok {
			abortWithError(c, http.StatusUnauthorized, domainerrors.ErrUnauthorized.Error())
			return
		}
		c.Next()
	}
}

// Identity retorna a identidade resolvida por Authenticate
func Identity(c *gin.Context) (ports.Claims, bool) {
	value, ok := c.Get(IdentityContextKey)
	if !ok {
		return ports.Claims{}, false
	}
	claims, ok := value.(ports.Claims)
	return claims, ok
}

// SetAuthCookie grava o token no cookie de sessão http-only
func SetAuthCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AuthCookieName, token, int(AuthCookieMaxAge.Seconds()), "/", "", secure, true)
}

// ClearAuthCookie expira o cookie de sessão
func ClearAuthCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AuthCookieName, "", -1, "/", "", secure, true)
}
