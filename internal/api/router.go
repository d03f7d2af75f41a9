package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fittrack/exercise-tracker/internal/api/handler"
	"github.com/fittrack/exercise-tracker/internal/api/middleware"
	"github.com/fittrack/exercise-tracker/internal/core/service"
	mongodb "github.com/fittrack/exercise-tracker/internal/infrastructure/db/mongo"
	redisdb "github.com/fittrack/exercise-tracker/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("exercise_tracker"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	userService := service.NewUserService(userRepo, log)
	exerciseService := service.NewExerciseService(userRepo, log)

	userHandler := handler.NewUserHandler(userService)
	exerciseHandler := handler.NewExerciseHandler(exerciseService)
	statusHandler := handler.NewStatusHandler()

	// --- Landing page and operational endpoints ---
	e.GET("/", serveLanding)
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- API routes ---
	hits := redisdb.NewHitCounter(rdb)
	apiGroup := e.Group("/api", middleware.Stats(hits, log))

	apiGroup.GET("", statusHandler.Status)
	apiGroup.GET("/users", userHandler.List)
	apiGroup.POST("/users", userHandler.Create)
	apiGroup.DELETE("/users/reset", userHandler.Reset)
	apiGroup.POST("/users/:id/exercises", exerciseHandler.Add)
	apiGroup.GET("/users/:id/logs", exerciseHandler.Logs)

	return e
}
