package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/kitanda-backend/docs" // registra a especificação Swagger
	domainerrors "github.com/rafabene/kitanda-backend/internal/domain/errors"
	"github.com/rafabene/kitanda-backend/internal/domain/ports"
	"github.com/rafabene/kitanda-backend/internal/handlers/dto"
	"github.com/rafabene/kitanda-backend/internal/handlers/middleware"
	"github.com/rafabene/kitanda-backend/internal/infrastructure/i18n"
	"github.com/rafabene/kitanda-backend/internal/infrastructure/metrics"
)

// RouterConfig reúne as dependências do router
type RouterConfig struct {
	Env            string
	AllowedOrigins string

	AuthHandler     *AuthHandler
	BusinessHandler *BusinessHandler
	ProductHandler  *ProductHandler

	Tokens  ports.TokenService
	I18n    *i18n.Service
	Logger  ports.Logger
	Metrics *metrics.Metrics
	// Limiter nil desativa o limite de login e cadastro
	Limiter middleware.Limiter
}

// NewRouter monta o engine do Gin com middlewares e rotas
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.NewI18nMiddleware(cfg.I18n).DetectLanguage())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		cfg.Logger.Error("panic recovered",
			"panic", recovered,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(middleware.RequestIDContextKey),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewError(c, domainerrors.ErrInternal.Error()))
	}))
	router.Use(middleware.RequestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
	}
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Authenticate(cfg.Tokens))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewError(c, "error.route_not_found"))
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireIdentity := middleware.RequireIdentity()
	throttle := middleware.RateLimit(cfg.Limiter, cfg.Logger)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", throttle, cfg.AuthHandler.Register)
			auth.POST("/login", throttle, cfg.AuthHandler.Login)
			auth.POST("/logout", cfg.AuthHandler.Logout)
			auth.GET("/me", requireIdentity, cfg.AuthHandler.Me)
			auth.GET("/me/businesses", requireIdentity, cfg.AuthHandler.MyBusinesses)
		}

		businesses := v1.Group("/businesses")
		{
			businesses.GET("", cfg.BusinessHandler.List)
			businesses.POST("", requireIdentity, cfg.BusinessHandler.Create)
			businesses.GET("/slug/:slug", cfg.BusinessHandler.GetBySlug)
			businesses.GET("/:id", cfg.BusinessHandler.Get)
			businesses.PUT("/:id", requireIdentity, cfg.BusinessHandler.Update)
			businesses.DELETE("/:id", requireIdentity, cfg.BusinessHandler.Delete)
		}

		products := v1.Group("/products")
		{
			products.GET("", cfg.ProductHandler.List)
			products.POST("", requireIdentity, cfg.ProductHandler.Create)
			products.GET("/:id", cfg.ProductHandler.Get)
			products.PUT("/:id", requireIdentity, cfg.ProductHandler.Update)
			products.DELETE("/:id", requireIdentity, cfg.ProductHandler.Delete)
		}
	}

	return router
}
