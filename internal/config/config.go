package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// MongoDB
	MongoURI    string
	MongoDbName string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Server
	ApiPort string

	// Admin session gate
	JwtSecret         string
	JwtTTL            time.Duration
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string // when set, takes precedence over AdminPassword

	// App defaults
	AppName          string
	PlaceholderImage string
	SearchCacheTTL   time.Duration
	DefaultProvincia string
	DefaultMoneda    string
}

// Load configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file, ignoring errors if it doesn't exist
	godotenv.Load()

	cfg := &Config{}

	var err error

	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}
		return defaultValue
	}

	getRequiredEnv := func(key string) (string, error) {
		value, exists := os.LookupEnv(key)
		if !exists {
			return "", fmt.Errorf("missing required environment variable: %s", key)
		}
		return value, nil
	}

	cfg.MongoURI, err = getRequiredEnv("MONGO_URI")
	if err != nil {
		return nil, err
	}
	cfg.MongoDbName = getEnv("MONGO_DB_NAME", "cordoba_casas")
	cfg.RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.JwtSecret, err = getRequiredEnv("JWT_SECRET")
	if err != nil {
		return nil, err
	}
	cfg.ApiPort = getEnv("API_PORT", "8080")
	cfg.AppName = getEnv("APP_NAME", "Cordoba Casas")
	cfg.PlaceholderImage = getEnv("PLACEHOLDER_IMAGE", "/placeholder.svg")
	cfg.DefaultProvincia = getEnv("DEFAULT_PROVINCIA", "Córdoba")
	cfg.DefaultMoneda = getEnv("DEFAULT_MONEDA", "ARS")

	// Fixed credential pair guarding the admin panel. Overridable via env;
	// ADMIN_PASSWORD_HASH (bcrypt) takes precedence when present.
	cfg.AdminUsername = getEnv("ADMIN_USERNAME", "admin223")
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", "2232admin")
	cfg.AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", "")

	cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	jwtTTLSeconds, err := strconv.ParseInt(getEnv("JWT_TTL_SECONDS", "86400"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL_SECONDS: %w", err)
	}
	cfg.JwtTTL = time.Duration(jwtTTLSeconds) * time.Second

	cacheTTLSeconds, err := strconv.ParseInt(getEnv("SEARCH_CACHE_TTL_SECONDS", "60"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_CACHE_TTL_SECONDS: %w", err)
	}
	cfg.SearchCacheTTL = time.Duration(cacheTTLSeconds) * time.Second

	return cfg, nil
}
