package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	pkgstrings "regform/pkg/platform/strings"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr        string
	Environment string
	LogLevel    string

	// StaticDir holds the built registration SPA. Empty disables static serving.
	StaticDir          string
	CORSAllowedOrigins []string
	// TrustedProxies lists CIDRs or addresses of reverse proxies whose
	// X-Forwarded-For and X-Real-IP headers are believed. Empty trusts none.
	TrustedProxies []string

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	Redis     RedisConfig
	RateLimit RateLimitConfig
}

// RedisConfig configures the optional Redis backend for rate limiting.
// An empty URL keeps rate limit counters in process memory.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// RateLimitConfig bounds registration attempts per client IP.
type RateLimitConfig struct {
	Disabled bool
	Requests int
	Window   time.Duration
}

// IsProduction reports whether the server runs with production defaults.
func (s Server) IsProduction() bool {
	return s.Environment == "production"
}

// FromEnv builds a Server config from environment variables so main stays lean.
// Malformed numeric or duration values fall back to their defaults.
func FromEnv() Server {
	return Server{
		Addr:               envString("REGFORM_ADDR", ":3000"),
		Environment:        envString("REGFORM_ENV", "development"),
		LogLevel:           envString("LOG_LEVEL", "info"),
		StaticDir:          os.Getenv("STATIC_DIR"),
		CORSAllowedOrigins: pkgstrings.DedupeAndTrim(strings.Split(envString("CORS_ALLOWED_ORIGINS", "*"), ",")),
		TrustedProxies:     envList("TRUSTED_PROXIES"),
		RequestTimeout:     envDuration("REQUEST_TIMEOUT", 10*time.Second),
		ShutdownTimeout:    envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		RateLimit: RateLimitConfig{
			Disabled: os.Getenv("DISABLE_RATE_LIMIT") == "true",
			Requests: envInt("RATE_LIMIT_REQUESTS", 20),
			Window:   envDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
	}
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envList(key string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	return pkgstrings.DedupeAndTrim(strings.Split(v, ","))
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func envDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
