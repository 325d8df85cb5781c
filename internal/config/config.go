package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr        string
	UpstreamBaseURL string
	LogLevel        string

	AdminRole   string
	SessionFile string

	PostgresDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RateLimitRequests      int
	RateLimitWindowSeconds int
	RateLimitMaxKeys       int
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":3000"
	}
	return Config{
		HTTPAddr:               addr,
		UpstreamBaseURL:        envDefault("UPSTREAM_BASE_URL", "https://api.fischer-capital.com"),
		LogLevel:               envDefault("LOG_LEVEL", "info"),
		AdminRole:              envDefault("ADMIN_ROLE", "ADMIN"),
		SessionFile:            os.Getenv("SESSION_FILE"),
		PostgresDSN:            os.Getenv("POSTGRES_DSN"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:                envIntDefault("REDIS_DB", 0),
		RateLimitRequests:      envIntDefault("RATE_LIMIT_REQUESTS", 0),
		RateLimitWindowSeconds: envIntDefault("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitMaxKeys:       envIntDefault("RATE_LIMIT_MAX_KEYS", 10000),
	}
}

func envDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func (c Config) RateLimitWindow() time.Duration {
	if c.RateLimitWindowSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}
