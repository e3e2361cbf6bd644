package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port int `env:"PORT" envDefault:"8080"`

		// Путь, на который Discord отправляет interactions
		InteractionsPath string `env:"INTERACTIONS_PATH" envDefault:"/interactions"`

		ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
		WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	}

	Postgres struct {
		// Пустая строка не ошибка запуска: команды ответят "Database unavailable"
		URL string `env:"DATABASE_URL"`

		MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"2"`
		ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	}

	Redis struct {
		Addr     string `env:"REDIS_ADDR"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Discord struct {
		EphemeralReplies bool `env:"DISCORD_EPHEMERAL_REPLIES" envDefault:"false"`

		// Блокировка на создание персонажа, требует REDIS_ADDR
		CreateLockEnabled bool          `env:"CREATE_LOCK_ENABLED" envDefault:"false"`
		CreateLockTTL     time.Duration `env:"CREATE_LOCK_TTL" envDefault:"10s"`
	}
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	// В production переменные задаются напрямую, .env может отсутствовать
	_ = godotenv.Load()

	return Parse()
}

// Parse разбирает только переменные окружения процесса
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad как Load, но паникует при ошибке
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// DatabaseConfigured сообщает, задана ли строка подключения к базе
func (c *Config) DatabaseConfigured() bool {
	return c.Postgres.URL != ""
}

// RedisConfigured сообщает, задан ли адрес Redis
func (c *Config) RedisConfigured() bool {
	return c.Redis.Addr != ""
}
