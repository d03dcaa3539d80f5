package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/expertsquad/crm-api/docs"
	"github.com/expertsquad/crm-api/internal/api/handler"
	"github.com/expertsquad/crm-api/internal/api/middleware"
	"github.com/expertsquad/crm-api/internal/core/domain"
	"github.com/expertsquad/crm-api/internal/core/service"
	mongodb "github.com/expertsquad/crm-api/internal/infrastructure/db/mongo"
	redisdb "github.com/expertsquad/crm-api/internal/infrastructure/db/redis"
)

// RouterConfig carries the tunables the router needs beyond its
// connection handles.
type RouterConfig struct {
	JWTSecret        string
	ReminderInterval time.Duration
	StatsCacheTTL    time.Duration
}

// NewRouter builds the Echo instance with all routes registered and
// returns it together with the reminder engine, which the caller is
// responsible for starting.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) (*echo.Echo, *service.ReminderEngine) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("crm"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	noteRepo := mongodb.NewNoteRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	// --- Services ---
	recorder := service.NewActivityRecorder(activityRepo, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	userService := service.NewUserService(userRepo, recorder, log)
	clientService := service.NewClientService(clientRepo, recorder, log)
	noteService := service.NewNoteService(noteRepo, recorder, log)
	activityService := service.NewActivityService(activityRepo)
	reminderEngine := service.NewReminderEngine(clientRepo, cfg.ReminderInterval, log)
	statsService := service.NewStatsService(clientRepo, redisdb.NewCache(rdb), cfg.StatsCacheTTL, log)
	seedService := service.NewSeedService(userRepo, clientRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	clientHandler := handler.NewClientHandler(clientService)
	noteHandler := handler.NewNoteHandler(noteService)
	activityHandler := handler.NewActivityHandler(activityService)
	reminderHandler := handler.NewReminderHandler(reminderEngine)
	statsHandler := handler.NewStatsHandler(statsService)
	seedHandler := handler.NewSeedHandler(seedService)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/seed", seedHandler.Seed)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated routes ---
	auth := middleware.Auth(cfg.JWTSecret)

	clients := e.Group("/clients", auth)
	clients.GET("", clientHandler.List)
	clients.POST("", clientHandler.Create)
	clients.GET("/:id", clientHandler.Get)
	clients.PUT("/:id", clientHandler.Update)
	clients.DELETE("/:id", clientHandler.Delete)

	notes := e.Group("/notes", auth)
	notes.GET("", noteHandler.List)
	notes.POST("", noteHandler.Create)
	notes.GET("/:id", noteHandler.Get)
	notes.PUT("/:id", noteHandler.Update)
	notes.DELETE("/:id", noteHandler.Delete)

	activity := e.Group("/activity", auth)
	activity.GET("", activityHandler.List)

	alerts := e.Group("/alerts", auth)
	alerts.GET("", reminderHandler.List)
	alerts.DELETE("/:id", reminderHandler.Dismiss)

	stats := e.Group("/stats", auth)
	stats.GET("/dashboard", statsHandler.Dashboard)

	// --- Admin-only routes ---
	users := e.Group("/users", auth, middleware.RBAC(domain.RoleAdmin))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	return e, reminderEngine
}
