package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSessionSecret is only accepted outside production.
const DefaultSessionSecret = "default_secret_for_development"

// ErrMissingSessionSecret is returned when production runs without SESSION_SECRET.
var ErrMissingSessionSecret = errors.New("SESSION_SECRET must be set in production")

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Session  SessionConfig
	Auth     AuthConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// SessionConfig configures the session cookie.
type SessionConfig struct {
	Secret string
	// UsingDefaultSecret is set when SESSION_SECRET was absent in development.
	UsingDefaultSecret bool
	Domain             string
	MaxAgeDays         int
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	BcryptCost          int
	LoginMaxAttempts    int
	LoginLockoutMinutes int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	env := strings.ToLower(getEnv("NODE_ENV", getEnv("APP_ENV", "development")))

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "me-tool"),
			Env:                   env,
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "3000"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Session: SessionConfig{
			Secret:     os.Getenv("SESSION_SECRET"),
			Domain:     os.Getenv("DOMAIN"),
			MaxAgeDays: 30,
		},
		Auth: AuthConfig{
			BcryptCost:          getEnvAsInt("AUTH_BCRYPT_COST", 10),
			LoginMaxAttempts:    getEnvAsInt("LOGIN_MAX_ATTEMPTS", 5),
			LoginLockoutMinutes: getEnvAsInt("LOGIN_LOCKOUT_MINUTES", 15),
		},
	}

	if cfg.Session.Secret == "" {
		if cfg.App.IsProduction() {
			return nil, ErrMissingSessionSecret
		}
		cfg.Session.Secret = DefaultSessionSecret
		cfg.Session.UsingDefaultSecret = true
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production cookie rules.
func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// MaxAge returns the session lifetime.
func (s SessionConfig) MaxAge() time.Duration {
	return time.Duration(s.MaxAgeDays) * 24 * time.Hour
}

// LockoutWindow returns how long failed logins are remembered.
func (a AuthConfig) LockoutWindow() time.Duration {
	return time.Duration(a.LoginLockoutMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
