// Package config loads service settings from defaults, an optional YAML file
// and INVENTORY_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultJWTSecret is only accepted with the in-memory storage driver.
const DefaultJWTSecret = "super-secret-key"

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	HTTP      HTTPConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Digest    DigestConfig
	SMTP      SMTPConfig
	Log       LogConfig
}

type HTTPConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

type StorageConfig struct {
	Driver string
}

type DatabaseConfig struct {
	URL     string
	Migrate bool
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	AdminUser     string
	AdminPassword string
}

type RateLimitConfig struct {
	RPS           float64
	Burst         int
	IdleTimeout   time.Duration
	SweepInterval time.Duration
}

type DigestConfig struct {
	Enabled bool
	Hour    int
}

type SMTPConfig struct {
	Server       string
	Port         string
	User         string
	Password     string
	From         string
	To           string
	AuthDisabled bool
}

type LogConfig struct {
	Level       string
	Development bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.shutdown_timeout", "10s")
	v.SetDefault("storage.driver", StorageMemory)
	v.SetDefault("database.migrate", true)
	v.SetDefault("redis.addr", "inventory-redis:6379")
	v.SetDefault("redis.key_prefix", "inventory")
	v.SetDefault("auth.jwt_secret", DefaultJWTSecret)
	v.SetDefault("auth.token_ttl", "15m")
	v.SetDefault("auth.admin_user", "admin")
	v.SetDefault("ratelimit.rps", 1.0)
	v.SetDefault("ratelimit.burst", 3)
	v.SetDefault("ratelimit.idle_timeout", "5m")
	v.SetDefault("ratelimit.sweep_interval", "1m")
	v.SetDefault("digest.enabled", false)
	v.SetDefault("digest.hour", 7)
	v.SetDefault("smtp.port", "587")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path when given, otherwise looks for config.yaml in the working
// directory and /etc/inventory. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/inventory")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper maps a populated viper instance onto Config and validates it.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		HTTP: HTTPConfig{
			Addr:            v.GetString("http.addr"),
			ShutdownTimeout: v.GetDuration("http.shutdown_timeout"),
		},
		Storage: StorageConfig{Driver: strings.ToLower(v.GetString("storage.driver"))},
		Database: DatabaseConfig{
			URL:     v.GetString("database.url"),
			Migrate: v.GetBool("database.migrate"),
		},
		Redis: RedisConfig{
			Addr:      v.GetString("redis.addr"),
			Password:  v.GetString("redis.password"),
			DB:        v.GetInt("redis.db"),
			KeyPrefix: v.GetString("redis.key_prefix"),
		},
		Auth: AuthConfig{
			JWTSecret:     v.GetString("auth.jwt_secret"),
			TokenTTL:      v.GetDuration("auth.token_ttl"),
			AdminUser:     v.GetString("auth.admin_user"),
			AdminPassword: v.GetString("auth.admin_password"),
		},
		RateLimit: RateLimitConfig{
			RPS:           v.GetFloat64("ratelimit.rps"),
			Burst:         v.GetInt("ratelimit.burst"),
			IdleTimeout:   v.GetDuration("ratelimit.idle_timeout"),
			SweepInterval: v.GetDuration("ratelimit.sweep_interval"),
		},
		Digest: DigestConfig{
			Enabled: v.GetBool("digest.enabled"),
			Hour:    v.GetInt("digest.hour"),
		},
		SMTP: SMTPConfig{
			Server:       v.GetString("smtp.server"),
			Port:         v.GetString("smtp.port"),
			User:         v.GetString("smtp.user"),
			Password:     v.GetString("smtp.password"),
			From:         v.GetString("smtp.from"),
			To:           v.GetString("smtp.to"),
			AuthDisabled: v.GetBool("smtp.auth_disabled"),
		},
		Log: LogConfig{
			Level:       v.GetString("log.level"),
			Development: v.GetBool("log.development"),
		},
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageRedis:
	case StoragePostgres:
		if c.Database.URL == "" {
			return errors.New("database.url is required for the postgres storage driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret must not be empty")
	}
	if c.Auth.JWTSecret == DefaultJWTSecret && c.Storage.Driver != StorageMemory {
		return fmt.Errorf("auth.jwt_secret must be changed from the default for the %s storage driver", c.Storage.Driver)
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("ratelimit.rps and ratelimit.burst must be positive")
	}
	if c.RateLimit.SweepInterval <= 0 {
		return errors.New("ratelimit.sweep_interval must be positive")
	}
	if c.Digest.Hour < 0 || c.Digest.Hour > 23 {
		return fmt.Errorf("digest.hour must be between 0 and 23, got %d", c.Digest.Hour)
	}
	if c.Digest.Enabled && (c.SMTP.Server == "" || c.SMTP.To == "") {
		return errors.New("smtp.server and smtp.to are required when digest.enabled is set")
	}
	return nil
}
