package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"police-bot-backend/internal/common/config"
)

// ErrNotConfigured адрес Redis не задан
var ErrNotConfigured = errors.New("redis address is not configured")

const dialTimeout = 5 * time.Second

// Client подключение к Redis для блокировок и readiness-проверки
type Client struct {
	*redis.Client
}

// NewClient подключается к Redis по конфигурации и сразу проверяет соединение
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if !cfg.RedisConfigured() {
		return nil, ErrNotConfigured
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: dialTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Redis.Addr, err)
	}

	return &Client{Client: rdb}, nil
}

// HealthCheck проверяет соединение с Redis
func (c *Client) HealthCheck(ctx context.Context) error {
	if c == nil || c.Client == nil {
		return ErrNotConfigured
	}
	return c.Ping(ctx).Err()
}
