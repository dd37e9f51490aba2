package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration. FromEnv builds it from
// environment variables so main stays lean.
type Server struct {
	Addr          string
	DatabaseURL   string
	Redis         RedisConfig
	JWTSigningKey string
	TokenTTL      time.Duration

	// File storage roots. Templates are read-only agreement templates;
	// the data dir holds uploaded tenant PDFs and generated agreements.
	TemplateDir string
	DataDir     string

	// AdminUsername/AdminPassword seed the initial admin account when no
	// account with that username exists yet.
	AdminUsername string
	AdminPassword string

	// AlertInterval is how often the expiry worker rescans agreements.
	AlertInterval time.Duration
	// AlertWindowDays is how far ahead the worker looks for expiring
	// agreements.
	AlertWindowDays int
}

// RedisConfig holds Redis connection settings. An empty URL disables Redis
// and the in-memory fallbacks are used instead.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func FromEnv() Server {
	addr := os.Getenv("RENTORA_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Development default - must be overridden in production.
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	templateDir := os.Getenv("TEMPLATE_DIR")
	if templateDir == "" {
		templateDir = "templates"
	}
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	adminUsername := os.Getenv("ADMIN_USERNAME")
	if adminUsername == "" {
		adminUsername = "admin"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		// Development default - must be overridden in production.
		adminPassword = "admin123"
	}

	return Server{
		Addr:            addr,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		Redis:           redisFromEnv(),
		JWTSigningKey:   jwtSigningKey,
		TokenTTL:        durationEnv("TOKEN_TTL", 30*time.Minute),
		TemplateDir:     templateDir,
		DataDir:         dataDir,
		AdminUsername:   adminUsername,
		AdminPassword:   adminPassword,
		AlertInterval:   durationEnv("ALERT_INTERVAL", 24*time.Hour),
		AlertWindowDays: intEnv("ALERT_WINDOW_DAYS", 30),
	}
}

func redisFromEnv() RedisConfig {
	return RedisConfig{
		URL:          os.Getenv("REDIS_URL"),
		PoolSize:     intEnv("REDIS_POOL_SIZE", 10),
		MinIdleConns: intEnv("REDIS_MIN_IDLE_CONNS", 2),
		DialTimeout:  durationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
		ReadTimeout:  durationEnv("REDIS_READ_TIMEOUT", 3*time.Second),
		WriteTimeout: durationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second),
	}
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return v
}
