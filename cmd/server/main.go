package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "tutorhub/docs" // swagger docs

	"tutorhub/internal/auth"
	"tutorhub/internal/cache"
	"tutorhub/internal/config"
	"tutorhub/internal/directory"
	"tutorhub/internal/handler"
	"tutorhub/internal/logger"
	"tutorhub/internal/router"
	"tutorhub/internal/service"
	"tutorhub/internal/store"
)

// @title TutorHub Directory API
// @version 1.0
// @description Tutor marketplace directory with profiles, tuition posts, applications and admin moderation.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	zapLog, err := logger.New(cfg.LogLevel, cfg.LogFormat, "tutorhub")
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zapLog.Sync()

	st, err := newStore(cfg)
	if err != nil {
		zapLog.Fatal("store init", zap.Error(err))
	}
	zapLog.Info("snapshot store ready", zap.String("backend", cfg.StoreBackend))

	dir, err := directory.Open(context.Background(), st,
		directory.WithLatency(time.Duration(cfg.SimLatencyMS)*time.Millisecond),
		directory.WithLogger(zapLog),
	)
	if err != nil {
		zapLog.Fatal("directory init", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Services
	authService := service.NewAuthService(dir, jwtService, tokenStore)
	tutorService := service.NewTutorService(dir, cacheClient)
	parentService := service.NewParentService(dir)
	postService := service.NewPostService(dir)
	applicationService := service.NewApplicationService(dir)
	adminService := service.NewAdminService(dir, cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	tutorHandler := handler.NewTutorHandler(tutorService)
	parentHandler := handler.NewParentHandler(parentService)
	postHandler := handler.NewPostHandler(postService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	adminHandler := handler.NewAdminHandler(adminService)

	e := echo.New()
	e.Use(middleware.RequestID())

	router.Register(
		e,
		cfg,
		tokenStore,
		authHandler,
		tutorHandler,
		parentHandler,
		postHandler,
		applicationHandler,
		adminHandler,
	)

	addr := ":" + cfg.ServerPort
	zapLog.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		zapLog.Fatal("server start", zap.Error(err))
	}
}

// newStore selects the snapshot backend from config. The file backend is
// the default and needs no external service.
func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.StoreRedis:
		return store.NewRedisStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB), nil
	case config.StoreMySQL:
		return store.NewMySQLStore(cfg.MySQLDSN)
	default:
		return store.NewFileStore(cfg.DataFile), nil
	}
}
