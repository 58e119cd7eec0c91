package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/marketgrid/marketplace-api/internal/api/handler"
	"github.com/marketgrid/marketplace-api/internal/api/middleware"
	"github.com/marketgrid/marketplace-api/internal/core/domain"
	"github.com/marketgrid/marketplace-api/internal/core/ports"
	"github.com/marketgrid/marketplace-api/internal/core/service"
	"github.com/marketgrid/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/marketgrid/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/marketgrid/marketplace-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered. The audit
// trail is constructed by the caller so its worker lifecycle stays tied to
// the process context.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditTrail, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	denylist := redisdb.NewDenylist(rdb)
	counters := redisdb.NewCounterStore(rdb)

	hasher := service.NewBcryptHasher()
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL(), denylist)
	authService := service.NewAuthService(userRepo, hasher, tokens, audit, log)
	productService := service.NewProductService(productRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService, tokens.TTL(), cfg.IsProduction())
	userHandler := handler.NewUserHandler(authService)
	productHandler := handler.NewProductHandler(productService)

	authenticated := middleware.Auth(tokens)
	sellersOnly := middleware.RBAC(domain.RoleSeller, domain.RoleAdmin)
	loginLimiter := middleware.RateLimit(counters, cfg.RateLimitMax, cfg.RateLimitWindow, log)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/login", authHandler.Login, loginLimiter)
	auth.POST("/signout", authHandler.SignOut)

	// --- User routes ---
	e.POST("/users", userHandler.Create)

	// --- Product routes (reads are public, vendor listing and all mutations
	// require a valid token; mutations additionally require seller/admin) ---
	products := e.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/vendor/:vendor_id", productHandler.ListByVendor, authenticated)
	products.POST("", productHandler.Create, authenticated, sellersOnly)
	products.PUT("/:product_id", productHandler.Update, authenticated, sellersOnly)
	products.DELETE("/:product_id", productHandler.Delete, authenticated, sellersOnly)
	products.POST("/delete", productHandler.DeleteMany, authenticated, sellersOnly)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
