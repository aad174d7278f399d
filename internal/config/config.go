// Application configuration from environment variables only (no secrets in
// the repository).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the root configuration (env-only).
type Config struct {
	Server   Server
	Redis    Redis
	Upstream Upstream
	Security Security
	Locale   Locale
}

// Server holds HTTP server settings (port, timeouts, shutdown grace).
type Server struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

// Redis: address, password, pool, timeouts (sessions and the live feed).
type Redis struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Upstream is the core LokaClean API this gateway fronts.
type Upstream struct {
	BaseURL string
	Timeout time.Duration
}

// Security: gateway JWT, session lifetime, default phone country code.
type Security struct {
	JWTSecret          string
	AccessTTL          time.Duration
	SessionTTL         time.Duration
	DefaultCountryCode string
}

// Locale: the timezone that defines "calendar day" for date-range filters.
type Locale struct {
	Timezone string
}

// Load reads the config from env; JWT_SECRET and UPSTREAM_BASE_URL are
// required.
func Load() (*Config, error) {
	cfg := &Config{
		Server: Server{
			Port:            getInt("SERVER_PORT", 8080),
			ReadTimeout:     getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			CORSOrigins:     getList("CORS_ORIGINS", []string{"*"}),
		},
		Redis: Redis{
			Addr:         getEnv("REDIS_ADDR", "localhost:6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getInt("REDIS_DB", 0),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE", 2),
			DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Upstream: Upstream{
			BaseURL: getEnv("UPSTREAM_BASE_URL", ""),
			Timeout: getDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		},
		Security: Security{
			JWTSecret:          getEnv("JWT_SECRET", ""),
			AccessTTL:          getDuration("JWT_ACCESS_TTL", time.Hour),
			SessionTTL:         getDuration("SESSION_TTL", 24*time.Hour),
			DefaultCountryCode: getEnv("DEFAULT_COUNTRY_CODE", "62"),
		},
		Locale: Locale{
			Timezone: getEnv("LOCALE_TIMEZONE", "Asia/Jakarta"),
		},
	}
	if cfg.Security.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Upstream.BaseURL == "" {
		return nil, fmt.Errorf("UPSTREAM_BASE_URL is required")
	}
	return cfg, nil
}

// Location resolves the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Locale.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// getEnv returns the env value or the default.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getInt parses an integer from env or returns def.
func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// getDuration parses a duration from env or returns def.
func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// getList parses a comma-separated list from env or returns def.
func getList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
