package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gigworks/identity-api/internal/api/handler"
	"github.com/gigworks/identity-api/internal/api/middleware"
	"github.com/gigworks/identity-api/internal/core/domain"
	"github.com/gigworks/identity-api/internal/core/service"
	"github.com/gigworks/identity-api/internal/infrastructure/config"
	mongodb "github.com/gigworks/identity-api/internal/infrastructure/db/mongo"
	redisdb "github.com/gigworks/identity-api/internal/infrastructure/db/redis"
	"github.com/gigworks/identity-api/internal/infrastructure/queue"
	"github.com/gigworks/identity-api/internal/infrastructure/token"
)

// NewRouter builds the Echo instance with all routes registered, plus the
// activity dispatcher the caller must Start.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("identity"))

	// --- Dependencies ---
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	activityRepo := mongodb.NewActivityRepository(db)
	activityService := service.NewActivityService(activityRepo, log)
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, activityService, log)

	profileRepo := mongodb.NewProfileRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.LoginMaxAttempts, cfg.LoginAttemptWindow)

	profileService := service.NewProfileService(profileRepo, issuer, dispatcher, log)
	authService := service.NewAuthService(profileRepo, adminRepo, issuer, limiter, dispatcher, log)

	profileHandler := handler.NewProfileHandler(profileService)
	authHandler := handler.NewAuthHandler(authService)
	activityHandler := handler.NewActivityHandler(activityService)

	authMW := middleware.Auth(issuer)

	// --- Routes ---
	v1 := e.Group("/v1")
	v1.POST("/profiles", profileHandler.Register)
	v1.GET("/profiles", profileHandler.List)
	v1.GET("/profiles/me", authHandler.Me, authMW)
	v1.GET("/profiles/:id", profileHandler.Get)
	v1.PATCH("/profiles/:id", profileHandler.Update, authMW)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/activity", activityHandler.Recent, authMW, middleware.RequireRole(domain.RoleAdmin))

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, dispatcher
}
