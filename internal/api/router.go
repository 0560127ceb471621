package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nestera/savings-api/internal/api/handler"
	"github.com/nestera/savings-api/internal/api/middleware"
	"github.com/nestera/savings-api/internal/core/domain"
	"github.com/nestera/savings-api/internal/core/service"
	"github.com/nestera/savings-api/internal/infrastructure/config"
	mongodb "github.com/nestera/savings-api/internal/infrastructure/db/mongo"
	redisdb "github.com/nestera/savings-api/internal/infrastructure/db/redis"
	"github.com/nestera/savings-api/internal/infrastructure/queue"
	"github.com/nestera/savings-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes
// registered, plus the dispatcher the caller must Start.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("savings"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	planRepo := mongodb.NewPlanRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens)
	planService := service.NewPlanService(planRepo)
	eventService := service.NewEventService(planRepo, dedup)

	dispatcher := queue.NewDispatcher(cfg.EventWorkers, eventService, logger.Get())

	authHandler := handler.NewAuthHandler(authService)
	planHandler := handler.NewPlanHandler(planService)
	webhookHandler := handler.NewWebhookHandler(dispatcher)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Gateway webhook: authenticated by body signature, not tokens ---
	e.POST("/webhooks/gateway", webhookHandler.Receive,
		middleware.VerifySignature(cfg.WebhookSecret))

	// --- Protected routes: bearer token, then role policy ---
	policy := middleware.NewRolePolicy().
		Group("/v1").
		Group("/v1/admin", domain.RoleAdmin)

	v1 := e.Group("/v1", middleware.Auth(tokens, userRepo), policy.Enforce())
	v1.POST("/plans", planHandler.Create)
	v1.GET("/plans", planHandler.List)
	v1.GET("/admin/plans", planHandler.ListAll)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, dispatcher
}
