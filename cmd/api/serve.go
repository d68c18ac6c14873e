package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httphandlers "github.com/rafabene/kitanda-backend/internal/handlers/http"
	"github.com/rafabene/kitanda-backend/internal/handlers/middleware"
	"github.com/rafabene/kitanda-backend/internal/infrastructure/i18n"
	"github.com/rafabene/kitanda-backend/internal/infrastructure/ratelimit"
)

func newServeCmd() *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Inicia o servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(autoMigrate)
		},
	}
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "cria ou atualiza as tabelas antes de subir")

	return cmd
}

func runServer(autoMigrate bool) error {
	a, err := bootstrap(autoMigrate)
	if err != nil {
		return err
	}
	defer a.close()

	cfg := a.cfg
	logger := a.logger

	i18nService, err := i18n.NewService(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	if err != nil {
		return err
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Sem Redis o limite de login e cadastro fica desativado
	var limiter middleware.Limiter
	if cfg.Redis.URL != "" {
		ctx, cancel := withPingTimeout()
		client, err := ratelimit.NewRedisClient(ctx, cfg.Redis.URL)
		cancel()
		if err != nil {
			logger.Warn("redis unavailable, rate limiting disabled", "error", err)
		} else {
			defer func() { _ = client.Close() }()
			limiter = ratelimit.NewRedisLimiter(client, cfg.RateLimit.Requests, cfg.RateLimit.Window)
			logger.Info("rate limiting enabled",
				"requests", cfg.RateLimit.Requests,
				"window", cfg.RateLimit.Window.String(),
			)
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		Env:             cfg.Env,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		AuthHandler:     httphandlers.NewAuthHandler(a.authService, a.businessService, cfg.IsProduction(), logger),
		BusinessHandler: httphandlers.NewBusinessHandler(a.businessService, logger),
		ProductHandler:  httphandlers.NewProductHandler(a.productService, logger),
		Tokens:          a.tokens,
		I18n:            i18nService,
		Logger:          logger,
		Metrics:         a.metrics,
		Limiter:         limiter,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed", "error", err)
		return err
	case <-quit:
	}

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
	return nil
}
