package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/whiskerworks/cat-registry/internal/api/handler"
	"github.com/whiskerworks/cat-registry/internal/api/middleware"
	"github.com/whiskerworks/cat-registry/internal/core/domain"
	"github.com/whiskerworks/cat-registry/internal/core/ports"
	"github.com/whiskerworks/cat-registry/internal/core/service"
	"github.com/whiskerworks/cat-registry/internal/infrastructure/config"
	mongodb "github.com/whiskerworks/cat-registry/internal/infrastructure/db/mongo"
	redisdb "github.com/whiskerworks/cat-registry/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, files ports.FileStore, audit ports.AuditRecorder, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catregistry"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	catRepo := mongodb.NewCatRepository(db)

	authService := service.NewAuthService(userRepo, audit, cfg.JWTSecret, 24*time.Hour)
	userService := service.NewUserService(userRepo, audit, log)
	catService := service.NewCatService(catRepo, userRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService, userService)
	catHandler := handler.NewCatHandler(catService, files)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	limiter := redisdb.NewLimiter(rdb, cfg.RateLimit.Max, cfg.RateLimit.Window)
	loginLimit := middleware.RateLimit(limiter, "login", log)
	registerLimit := middleware.RateLimit(limiter, "register", log)

	v1 := e.Group("/api/v1")

	// --- Auth ---
	v1.POST("/auth/login", authHandler.Login, loginLimit)

	// --- Users ---
	users := v1.Group("/users")
	users.POST("", userHandler.Register, registerLimit)
	users.GET("", userHandler.List)
	users.GET("/token", authHandler.CheckToken, authRequired)
	users.GET("/:id", userHandler.Get)
	users.PUT("", userHandler.UpdateCurrent, authRequired)
	users.DELETE("", userHandler.DeleteCurrent, authRequired)

	// --- Cats ---
	cats := v1.Group("/cats")
	cats.GET("", catHandler.List)
	cats.GET("/area", catHandler.GetByBoundingBox)
	cats.GET("/user", catHandler.ListOwn, authRequired)
	cats.GET("/:id", catHandler.Get)
	cats.POST("", catHandler.Create, authRequired, middleware.LocationEnrichment())
	cats.PUT("/admin/:id", catHandler.Transfer, authRequired, adminOnly)
	cats.DELETE("/admin/:id", catHandler.AdminDelete, authRequired, adminOnly)
	cats.PUT("/:id", catHandler.Update, authRequired)
	cats.DELETE("/:id", catHandler.Delete, authRequired)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
