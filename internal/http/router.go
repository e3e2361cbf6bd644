package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"police-bot-backend/internal/common/config"
	"police-bot-backend/internal/common/middleware"
	citizenRepo "police-bot-backend/internal/features/citizen/repository/postgres"
	citizenService "police-bot-backend/internal/features/citizen/service"
	interactionHTTP "police-bot-backend/internal/features/interaction/delivery/http"
	interactionService "police-bot-backend/internal/features/interaction/service"
	userRepo "police-bot-backend/internal/features/user/repository/postgres"
	userService "police-bot-backend/internal/features/user/service"
	"police-bot-backend/internal/platform/postgres"
	redisplatform "police-bot-backend/internal/platform/redis"
)

const serviceName = "police-bot-backend"

// NewRouter собирает gin с маршрутами и middleware.
// rdb может быть nil, если Redis не настроен.
func NewRouter(cfg *config.Config, pg *postgres.Client, rdb *redisplatform.Client) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	var locker citizenService.Locker
	if cfg.Discord.CreateLockEnabled && rdb != nil {
		locker = redisplatform.NewLocker(rdb)
	}

	citizens := citizenService.NewCitizenService(citizenRepo.NewPostgresRepository(pg), locker, cfg.Discord.CreateLockTTL)
	users := userService.NewUserService(userRepo.NewPostgresRepository(pg))
	dispatcher := interactionService.NewDispatcher(citizens, users, cfg.Discord.EphemeralReplies)

	interactionHTTP.NewInteractionHandler(dispatcher).RegisterRoutes(router, cfg.Server.InteractionsPath)

	setupProbes(router, cfg, pg, rdb)

	if cfg.Debug {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return router
}

func setupProbes(router *gin.Engine, cfg *config.Config, pg *postgres.Client, rdb *redisplatform.Client) {
	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
		})
	})

	// Liveness probe
	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Readiness probe
	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		// Без DATABASE_URL сервис работает, но команды отвечают "Database unavailable"
		postgresStatus := "not configured"
		if cfg.DatabaseConfigured() {
			if err := pg.HealthCheck(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unready",
					"error":   "postgres unavailable",
					"details": err.Error(),
				})
				return
			}
			postgresStatus = "ok"
		}

		redisStatus := "not configured"
		if rdb != nil {
			if err := rdb.HealthCheck(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unready",
					"error":   "redis unavailable",
					"details": err.Error(),
				})
				return
			}
			redisStatus = "ok"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"postgres":  postgresStatus,
			"redis":     redisStatus,
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
		})
	})
}
