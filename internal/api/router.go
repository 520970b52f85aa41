package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/martialavocey05-dev/HoteliaSEM/internal/api/handler"
	"github.com/martialavocey05-dev/HoteliaSEM/internal/api/middleware"
	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/domain"
	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/service"
	mongostore "github.com/martialavocey05-dev/HoteliaSEM/internal/infrastructure/db/mongo"
	redisstore "github.com/martialavocey05-dev/HoteliaSEM/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, sessionTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hotelia"))

	// --- Dependencies ---
	accountRepo := mongostore.NewAccountRepository(db)
	auditRepo := mongostore.NewAuditRepository(db)
	sessionStore := redisstore.NewSessionStore(rdb)

	authService := service.NewAuthService(accountRepo, sessionStore, auditRepo, jwtSecret, sessionTTL, log)
	directoryService := service.NewDirectoryService(accountRepo, authService, auditRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(directoryService)

	authRequired := middleware.Auth(jwtSecret, sessionStore)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session, authRequired)

	// --- Admin routes (user-management view) ---
	admin := e.Group("/admin", authRequired, adminOnly)
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users/:id/deactivate", adminHandler.Deactivate)
	admin.POST("/users/:id/activate", adminHandler.Activate)
	admin.DELETE("/users/:id", adminHandler.Delete)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/audit-logs", adminHandler.AuditLogs)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
