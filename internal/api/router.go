package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/caffeinepub/ryk-cart/docs"
	"github.com/caffeinepub/ryk-cart/internal/api/handler"
	"github.com/caffeinepub/ryk-cart/internal/api/middleware"
	"github.com/caffeinepub/ryk-cart/internal/core/ports"
	"github.com/caffeinepub/ryk-cart/internal/core/service"
	rediscache "github.com/caffeinepub/ryk-cart/internal/infrastructure/db/redis"
	"github.com/caffeinepub/ryk-cart/internal/infrastructure/session"
	"github.com/caffeinepub/ryk-cart/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(rdb *redis.Client, backend ports.Backend, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	cache := rediscache.NewQueryCache(rdb)
	unlocks := session.NewUnlockStore(rdb, cfg.Admin.UnlockTTL)

	catalogService := service.NewCatalogService(backend, cache, log)
	cartService := service.NewCartService(backend, catalogService, cache, log)
	rewardsService := service.NewRewardsService(backend, cache, log)
	profileService := service.NewProfileService(backend, cache, unlocks, log)
	adminService := service.NewAdminService(backend, cache, unlocks, cfg.Admin.GatePasswordHash, log)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	rewardsHandler := handler.NewRewardsHandler(rewardsService)
	profileHandler := handler.NewProfileHandler(profileService)
	authHandler := handler.NewAuthHandler(profileService)
	adminHandler := handler.NewAdminHandler(adminService)

	optionalIdentity := middleware.Identity(cfg.JWTSecret, false)
	requiredIdentity := middleware.Identity(cfg.JWTSecret, true)

	// --- Catalog (public; identity attached when present) ---
	catalog := e.Group("/v1/products", optionalIdentity)
	catalog.GET("", catalogHandler.List)
	catalog.GET("/:id", catalogHandler.Get)

	// --- Cart and checkout ---
	cart := e.Group("/v1/cart", requiredIdentity)
	cart.GET("", cartHandler.Get)
	cart.POST("/items", cartHandler.AddItem)
	cart.DELETE("/items/:id", cartHandler.RemoveItem)
	e.POST("/v1/orders", cartHandler.PlaceOrder, requiredIdentity)

	// --- Rewards ---
	rewards := e.Group("/v1/rewards", requiredIdentity)
	rewards.GET("", rewardsHandler.Status)
	rewards.POST("/redeem", rewardsHandler.Redeem)

	// --- Profile and session ---
	profile := e.Group("/v1/profile", requiredIdentity)
	profile.GET("", profileHandler.Get)
	profile.PUT("", profileHandler.Put)

	auth := e.Group("/v1/auth", requiredIdentity)
	auth.GET("/session", authHandler.Session)
	auth.POST("/logout", authHandler.Logout)

	// --- Admin (role and unlock checks live in the service layer) ---
	admin := e.Group("/v1/admin")
	admin.GET("/gate", adminHandler.Gate, optionalIdentity)
	admin.POST("/unlock", adminHandler.Unlock, requiredIdentity)
	admin.POST("/lock", adminHandler.Lock, requiredIdentity)
	admin.POST("/bootstrap", adminHandler.Bootstrap, requiredIdentity)
	admin.POST("/products", adminHandler.CreateProduct, requiredIdentity)
	admin.PUT("/products/:id", adminHandler.UpdateProduct, requiredIdentity)
	admin.POST("/products/:id/toggle", adminHandler.ToggleProduct, requiredIdentity)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(rdb, backend)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
