package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/gatewatch/access-system/docs"
	"github.com/gatewatch/access-system/internal/api/handler"
	"github.com/gatewatch/access-system/internal/api/middleware"
	"github.com/gatewatch/access-system/internal/core/domain"
	"github.com/gatewatch/access-system/internal/core/ports"
	"github.com/gatewatch/access-system/internal/core/service"
	"github.com/gatewatch/access-system/internal/infrastructure/config"
	mongodb "github.com/gatewatch/access-system/internal/infrastructure/db/mongo"
	redisdb "github.com/gatewatch/access-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, notifier ports.AccessNotifier, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("access"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	ledger := mongodb.NewAuditLedger(db)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(accountRepo, tokenService)
	authorizer := service.NewAuthorizer(tokenService, accountRepo, log)
	accessService := service.NewAccessService(accountRepo, ledger, notifier, log)
	loginLimiter := redisdb.NewLoginLimiter(rdb, cfg.RateLimit.LoginAttempts, cfg.RateLimit.LoginWindow)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(accessService)
	userHandler := handler.NewUserHandler()

	authMiddleware := middleware.Auth(authorizer)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login, middleware.LoginRateLimit(loginLimiter, log))

	// --- User routes (authenticated, USER role) ---
	user := e.Group("/user", authMiddleware, middleware.RBAC(domain.RoleUser))
	user.GET("/status", userHandler.Status)

	// --- Admin routes (authenticated, ADMIN role) ---
	admin := e.Group("/admin", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", adminHandler.Users)
	admin.POST("/grant-access", adminHandler.GrantAccess)
	admin.POST("/revoke-access", adminHandler.RevokeAccess)
	admin.GET("/access-history", adminHandler.History)

	// --- Health probes and observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
