package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/jobtrail/jobtrail-api/docs"
	"github.com/jobtrail/jobtrail-api/internal/api/handler"
	"github.com/jobtrail/jobtrail-api/internal/api/middleware"
	"github.com/jobtrail/jobtrail-api/internal/core/service"
	"github.com/jobtrail/jobtrail-api/internal/core/token"
	mongodb "github.com/jobtrail/jobtrail-api/internal/infrastructure/db/mongo"
	redisdb "github.com/jobtrail/jobtrail-api/internal/infrastructure/db/redis"
	"github.com/jobtrail/jobtrail-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
	}))
	e.Use(echoprometheus.NewMiddleware("jobtrail"))

	// --- Dependencies ---
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, tokens)
	authHandler := handler.NewAuthHandler(authService)

	jobRepo := mongodb.NewJobRepository(db)
	jobCache := redisdb.NewJobCache(rdb)
	jobService := service.NewJobService(jobRepo, jobCache, log)
	jobHandler := handler.NewJobHandler(jobService)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- Job routes (bearer token required) ---
	jobs := e.Group("/v1/jobs", middleware.Auth(tokens))
	jobs.GET("", jobHandler.List)
	jobs.POST("", jobHandler.Create)
	jobs.PATCH("/:id", jobHandler.Update)
	jobs.DELETE("/:id", jobHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
