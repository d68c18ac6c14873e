package main

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/kitanda-backend/internal/domain/ports"
	"github.com/rafabene/kitanda-backend/internal/infrastructure/config"
	"github.com/rafabene/kitanda-backend/internal/infrastructure/logging"
	"github.com/rafabene/kitanda-backend/internal/infrastructure/metrics"
	"github.com/rafabene/kitanda-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/kitanda-backend/internal/infrastructure/security"
	"github.com/rafabene/kitanda-backend/internal/services"
)

// app reúne as dependências montadas a partir da configuração
type app struct {
	cfg     *config.Config
	logger  ports.Logger
	db      *gorm.DB
	metrics *metrics.Metrics
	tokens  *security.JWTService

	authService     *services.AuthService
	businessService *services.BusinessService
	productService  *services.ProductService
}

// bootstrap carrega configuração, conecta ao banco e monta os serviços
func bootstrap(autoMigrate bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting kitanda backend",
		"env", cfg.Env,
		"version", "dev",
	)

	if cfg.JWT.UsingInsecureDefault {
		logger.Warn("JWT_SECRET not set, using insecure development secret")
	}

	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if autoMigrate {
		if err := postgres.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.Info("database migrated")
	}

	tokens, err := security.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry, ports.SystemClock)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	m := metrics.New()

	userRepo := postgres.NewUserRepository(db)
	businessRepo := postgres.NewBusinessRepository(db)
	productRepo := postgres.NewProductRepository(db)
	uow := postgres.NewUnitOfWork(db)

	return &app{
		cfg:             cfg,
		logger:          logger,
		db:              db,
		metrics:         m,
		tokens:          tokens,
		authService:     services.NewAuthService(userRepo, security.NewBcryptHasher(0), tokens, m, logger),
		businessService: services.NewBusinessService(businessRepo, productRepo, uow, ports.SystemClock, m, logger),
		productService:  services.NewProductService(productRepo, businessRepo, ports.SystemClock, m, logger),
	}, nil
}

// close libera a conexão com o banco
func (a *app) close() {
	sqlDB, err := a.db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		a.logger.Warn("failed to close database", "error", err)
	}
}

// pingTimeout limita a checagem inicial de dependências externas
const pingTimeout = 5 * time.Second

func withPingTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), pingTimeout)
}
