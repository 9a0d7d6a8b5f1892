package app

import (
	"context"
	"net/http"

	"go-payroll/internal/insight"
	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/config"
	"go-payroll/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects infrastructure and mounts every module on router. The
// returned func releases the connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	log := zap.L().Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, 5)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	var generator insight.Generator = insight.DisabledGenerator{}
	if cfg.Gemini.APIKey != "" {
		g, err := insight.NewGeminiGenerator(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Temperature, cfg.Gemini.MaxTokens)
		if err != nil {
			_ = redisClient.Close()
			_ = sqlDB.Close()
			return nil, err
		}
		generator = g
	} else {
		log.Warn("GEMINI_API_KEY not set, insight endpoints will answer 503")
	}

	router.Use(middleware.RequestID())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 2. Register Modules & Routes
	if err := registerModules(router, cfg, sqlDB, gormDB, redisClient, generator); err != nil {
		_ = redisClient.Close()
		_ = sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		_ = redisClient.Close()
		_ = sqlDB.Close()
	}
	return cleanup, nil
}
