package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"police-bot-backend/internal/common/config"
	apperrors "police-bot-backend/internal/common/errors"
	"police-bot-backend/internal/common/logger"
)

// DBTX общий интерфейс *sql.DB, *sql.Conn и *sql.Tx
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Provider отдает подключение к базе или ErrDatabaseUnavailable
type Provider interface {
	DB() (DBTX, error)
}

type Client struct {
	db *sql.DB
}

// NewClient открывает пул соединений. При пустом DATABASE_URL возвращает
// клиент без базы: все запросы получат ErrDatabaseUnavailable.
func NewClient(cfg *config.Config) (*Client, error) {
	if !cfg.DatabaseConfigured() {
		logger.Warn().Msg("DATABASE_URL is not set, commands will reply with database unavailable")
		return &Client{}, nil
	}

	db, err := sql.Open("pgx", cfg.Postgres.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настройка пула соединений
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)

	// Недоступная база не мешает запуску, ошибка уйдет в ответ команды
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		logger.Warn().Err(err).Msg("PostgreSQL ping failed")
	} else {
		logger.Info().Msg("PostgreSQL client initialized")
	}

	return &Client{db: db}, nil
}

// NewFromDB оборачивает готовый пул
func NewFromDB(db *sql.DB) *Client {
	return &Client{db: db}
}

// DB возвращает пул соединений
func (c *Client) DB() (DBTX, error) {
	if c == nil || c.db == nil {
		return nil, apperrors.ErrDatabaseUnavailable
	}
	return c.db, nil
}

// Close закрывает соединение с базой данных
func (c *Client) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// HealthCheck проверяет здоровье базы данных
func (c *Client) HealthCheck(ctx context.Context) error {
	if c == nil || c.db == nil {
		return apperrors.ErrDatabaseUnavailable
	}
	return c.db.PingContext(ctx)
}

// Stats возвращает статистику пула соединений
func (c *Client) Stats() sql.DBStats {
	if c == nil || c.db == nil {
		return sql.DBStats{}
	}
	return c.db.Stats()
}
