package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ratewise/store-ratings/internal/api/handler"
	"github.com/ratewise/store-ratings/internal/api/middleware"
	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
	"github.com/ratewise/store-ratings/internal/core/service"
	redisdb "github.com/ratewise/store-ratings/internal/infrastructure/db/redis"
	"github.com/ratewise/store-ratings/internal/infrastructure/db/sqlite"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; login throttling and the Redis readiness check are then
// disabled.
func NewRouter(db *sql.DB, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("store_ratings"))

	// --- Dependencies ---
	exec := sqlite.NewExecutor(db, log)
	userRepo := sqlite.NewUserRepository(exec)
	storeRepo := sqlite.NewStoreRepository(exec)
	ratingRepo := sqlite.NewRatingRepository(exec)
	dashRepo := sqlite.NewDashboardRepository(exec)

	var limiter ports.LoginLimiter
	if rdb != nil {
		limiter = redisdb.NewLoginLimiter(rdb)
	}

	authService := service.NewAuthService(userRepo, limiter, jwtSecret, 24*time.Hour, log)
	userService := service.NewUserService(userRepo, storeRepo, ratingRepo)
	storeService := service.NewStoreService(storeRepo, userRepo, log)
	ratingService := service.NewRatingService(ratingRepo, storeRepo, log)
	dashService := service.NewDashboardService(dashRepo, storeRepo, ratingRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	storeHandler := handler.NewStoreHandler(storeService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	dashHandler := handler.NewDashboardHandler(dashService)

	authMiddleware := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	normalOnly := middleware.RBAC(domain.RoleNormalUser)
	ownerOnly := middleware.RBAC(domain.RoleStoreOwner)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- User routes ---
	users := e.Group("/users", authMiddleware)
	users.POST("", userHandler.Create, adminOnly)
	users.GET("", userHandler.List, adminOnly)
	users.PUT("/password", userHandler.UpdatePassword)
	users.GET("/:id", userHandler.Get, adminOnly)

	// --- Store routes ---
	stores := e.Group("/stores", authMiddleware)
	stores.POST("", storeHandler.Create, adminOnly)
	stores.GET("", storeHandler.List)
	stores.GET("/:id", storeHandler.Get)

	// --- Rating routes (Normal User only) ---
	ratings := e.Group("/ratings", authMiddleware, normalOnly)
	ratings.POST("/:storeId", ratingHandler.Create)
	ratings.PUT("/:storeId", ratingHandler.Update)
	ratings.GET("/:storeId", ratingHandler.Get)
	ratings.DELETE("/:storeId", ratingHandler.Delete)

	// --- Dashboards ---
	dashboard := e.Group("/dashboard", authMiddleware)
	dashboard.GET("/admin", dashHandler.Admin, adminOnly)
	dashboard.GET("/owner", dashHandler.Owner, ownerOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
