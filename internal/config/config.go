package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Catalog sources
const (
	CatalogStatic   = "static"
	CatalogPostgres = "postgres"
)

// Session stores
const (
	SessionsMemory = "memory"
	SessionsRedis  = "redis"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Form      FormConfig      `toml:"form"`
	Catalog   CatalogConfig   `toml:"catalog"`
	Database  DatabaseConfig  `toml:"database"`
	Sessions  SessionsConfig  `toml:"sessions"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`  // секунды
	WriteTimeout    int `toml:"write_timeout"` // секунды
	IdleTimeout     int `toml:"idle_timeout"`  // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"` // пусто - stdout
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// FormConfig параметры формы бронирования
type FormConfig struct {
	CitySelection bool `toml:"city_selection"` // false - вариант формы только с датами
}

type CatalogConfig struct {
	Source string `toml:"source"` // static | postgres
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type SessionsConfig struct {
	Store         string `toml:"store"` // memory | redis
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	TTLSeconds    int    `toml:"ttl_seconds"`

	CleanupIntervalSeconds int `toml:"cleanup_interval_seconds"` // очистка истекших форм в memory
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	ClientIdleSeconds int     `toml:"client_idle_seconds"` // клиент без запросов дольше удаляется
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "booking-form",
		},
		Form: FormConfig{
			CitySelection: true,
		},
		Catalog: CatalogConfig{
			Source: CatalogStatic,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    5,
			MaxIdleConns:    2,
			ConnMaxLifetime: 300,
		},
		Sessions: SessionsConfig{
			Store:      SessionsMemory,
			RedisAddr:  "localhost:6379",
			TTLSeconds:             3600,
			CleanupIntervalSeconds: 60,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 10,
			Burst:             20,
			ClientIdleSeconds: 300,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
// и применяет переопределения из переменных окружения.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения перечислений и диапазоны
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogStatic, CatalogPostgres:
	default:
		return fmt.Errorf("%w: catalog.source must be %q or %q, got %q",
			ErrInvalidConfig, CatalogStatic, CatalogPostgres, c.Catalog.Source)
	}

	switch c.Sessions.Store {
	case SessionsMemory, SessionsRedis:
	default:
		return fmt.Errorf("%w: sessions.store must be %q or %q, got %q",
			ErrInvalidConfig, SessionsMemory, SessionsRedis, c.Sessions.Store)
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 || c.RateLimit.ClientIdleSeconds <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second, burst and client_idle_seconds", ErrInvalidConfig)
	}

	if c.Sessions.Store == SessionsMemory && c.Sessions.TTLSeconds > 0 && c.Sessions.CleanupIntervalSeconds <= 0 {
		return fmt.Errorf("%w: sessions.cleanup_interval_seconds must be positive when ttl_seconds is set", ErrInvalidConfig)
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT: %v", ErrInvalidConfig, err)
		}
		c.Server.HTTPPort = port
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}
	if v := os.Getenv("CITY_SELECTION"); v != "" {
		c.Form.CitySelection = v == "true" || v == "1" || v == "yes"
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Sessions.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Sessions.RedisPassword = v
	}
	return nil
}
