package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata" // IANA-зоны без системной базы tzdata

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	Database       DatabaseConfig       `toml:"database"`
	Redis          RedisConfig          `toml:"redis"`
	RailwayService RailwayServiceConfig `toml:"railway_service"`
	BookingWindow  BookingWindowConfig  `toml:"booking_window"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды, 0 для SSE-потоков без ограничения
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
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

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr        string `toml:"addr"` // пустой адрес отключает кэш PNR
	Password    string `toml:"password"`
	DB          int    `toml:"db"`
	PNRCacheTTL int    `toml:"pnr_cache_ttl"` // секунды
}

// Enabled возвращает true, если кэш настроен
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type RailwayServiceConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	APIHost string `toml:"api_host"`
	Timeout int    `toml:"timeout"` // секунды
}

type BookingWindowConfig struct {
	Timezone               string `toml:"timezone"` // календарь "сегодня", IANA-имя
	RefreshIntervalSeconds int    `toml:"refresh_interval_seconds"`
}

// Location возвращает календарную локацию
func (b BookingWindowConfig) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

// RefreshInterval возвращает интервал пересчета статуса
func (b BookingWindowConfig) RefreshInterval() time.Duration {
	return time.Duration(b.RefreshIntervalSeconds) * time.Second
}

// Переменные окружения, переопределяющие секреты из файла
const (
	envDatabasePassword = "DATABASE_PASSWORD"
	envRailwayAPIKey    = "RAILWAY_API_KEY"
	envRedisPassword    = "REDIS_PASSWORD"
)

// Load загружает конфигурацию из TOML-файла.
// Перед чтением подхватывается .env (если есть), секреты можно переопределить переменными окружения.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(envDatabasePassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(envRailwayAPIKey); v != "" {
		c.RailwayService.APIKey = v
	}
	if v := os.Getenv(envRedisPassword); v != "" {
		c.Redis.Password = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "booking_window"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Redis.PNRCacheTTL == 0 {
		c.Redis.PNRCacheTTL = int(domain.DefaultPNRCacheTTL / time.Second)
	}
	if c.RailwayService.Timeout == 0 {
		c.RailwayService.Timeout = 5
	}
	if c.BookingWindow.Timezone == "" {
		c.BookingWindow.Timezone = domain.DefaultCalendarZone
	}
	if c.BookingWindow.RefreshIntervalSeconds == 0 {
		c.BookingWindow.RefreshIntervalSeconds = int(domain.DefaultRefreshInterval / time.Second)
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort < 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid server.http_port: %d", c.Server.HTTPPort)
	}
	if c.RailwayService.URL == "" {
		return errors.New("railway_service.url is required")
	}
	if c.BookingWindow.RefreshIntervalSeconds < 0 {
		return fmt.Errorf("invalid booking_window.refresh_interval_seconds: %d", c.BookingWindow.RefreshIntervalSeconds)
	}
	if _, err := c.BookingWindow.Location(); err != nil {
		return fmt.Errorf("invalid booking_window.timezone %q: %w", c.BookingWindow.Timezone, err)
	}
	return nil
}
