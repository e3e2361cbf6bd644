package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "police-bot-backend/docs"
	"police-bot-backend/internal/common/config"
	"police-bot-backend/internal/common/logger"
	apphttp "police-bot-backend/internal/http"
	"police-bot-backend/internal/platform/postgres"
	redisplatform "police-bot-backend/internal/platform/redis"
)

// @title           Police Roleplay Discord Bot API
// @version         1.0
// @description     Discord interactions webhook for the police roleplay database.
// @BasePath        /

// @tag.name interactions
// @tag.description Discord slash commands: character creation, character view, role sync

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load: %v\n", err)
		os.Exit(1)
	}

	logger.Init("police-bot-backend", cfg.Debug)

	logger.Info().
		Bool("debug", cfg.Debug).
		Str("interactions_path", cfg.Server.InteractionsPath).
		Msg("Starting police bot backend")

	// Пустой DATABASE_URL не ошибка: команды ответят "Database unavailable"
	pg, err := postgres.NewClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open database")
	}
	defer pg.Close()

	var rdb *redisplatform.Client
	if cfg.RedisConfigured() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err = redisplatform.NewClient(ctx, cfg)
		cancel()
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection established")
	} else if cfg.Discord.CreateLockEnabled {
		logger.Warn().Msg("CREATE_LOCK_ENABLED is set but REDIS_ADDR is empty, character creation is not locked")
	}

	router := apphttp.NewRouter(cfg, pg, rdb)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Ждем сигнала для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
