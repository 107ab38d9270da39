package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/prpo-skupina4/optimizator-ms/api/swagger"
	"github.com/prpo-skupina4/optimizator-ms/internal/handler"
	internalmiddleware "github.com/prpo-skupina4/optimizator-ms/internal/middleware"
	"github.com/prpo-skupina4/optimizator-ms/internal/repository"
	"github.com/prpo-skupina4/optimizator-ms/internal/service"
	"github.com/prpo-skupina4/optimizator-ms/pkg/cache"
	"github.com/prpo-skupina4/optimizator-ms/pkg/config"
	"github.com/prpo-skupina4/optimizator-ms/pkg/logger"
	corsmiddleware "github.com/prpo-skupina4/optimizator-ms/pkg/middleware/cors"
	reqidmiddleware "github.com/prpo-skupina4/optimizator-ms/pkg/middleware/requestid"
)

// @title Timetable Optimizer API
// @version 1.0.0
// @description Computes conflict-free timetables by assigning one exercise slot per requested course activity.
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, response cache disabled", "error", err)
		} else {
			repo := repository.NewCacheRepository(client, logr)
			cacheSvc = service.NewCacheService(repo, metricsSvc, cfg.Cache.TTL, logr, true)
		}
	}

	validate := validator.New()
	optimizerSvc := service.NewOptimizerService(cfg.Optimizer, cfg.Cache.TTL, cacheSvc, metricsSvc, validate, logr)
	optimizeHandler := handler.NewOptimizeHandler(optimizerSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	if cfg.Auth.Enabled {
		authSvc := service.NewAuthService(cfg.Auth.Secret)
		api.Use(internalmiddleware.JWT(authSvc))
	}
	api.POST("/timetables/:userId/optimize", optimizeHandler.Optimize)
	api.POST("/timetables/:userId/export", optimizeHandler.Export)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
