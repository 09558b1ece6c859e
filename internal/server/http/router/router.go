package router

import (
	"errors"
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/polkiloo/habitquest/internal/metrics"
	"github.com/polkiloo/habitquest/internal/server/http/handlers"
	"github.com/polkiloo/habitquest/internal/server/http/middleware"
)

var errValidatorEngine = errors.New("unexpected binding validator engine")

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.QuestFacade, m *metrics.Metrics, logger *slog.Logger) (*gin.Engine, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, errValidatorEngine
	}
	if err := handlers.RegisterValidators(v); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	habitHandler := handlers.NewHabitHandler(facade)
	achievementHandler := handlers.NewAchievementHandler(facade)
	shopHandler := handlers.NewShopHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	private := api.Group("")
	private.Use(middleware.AuthRequired(facade))
	private.GET("/user", userHandler.Profile)

	habits := private.Group("/habits")
	habits.GET("", habitHandler.List)
	habits.POST("", habitHandler.Create)
	habits.PATCH("/:habitId", habitHandler.Rename)
	habits.DELETE("/:habitId", habitHandler.Delete)
	habits.POST("/:habitId/finish", habitHandler.Finish)

	private.GET("/achievements", achievementHandler.List)
	private.GET("/shop", shopHandler.List)
	private.POST("/shop", shopHandler.Create)

	return engine, nil
}
