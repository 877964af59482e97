package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode   string
	Port      string
	SeedData  bool
	Database  DatabaseConfig
	JWT       JWTConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds access token configuration
type JWTConfig struct {
	Secret          string
	AccessTokenMins int
}

// CacheConfig holds cache backend and per-list TTL configuration
type CacheConfig struct {
	RedisURL      string
	SweepInterval time.Duration
	StatesTTL     time.Duration
	CitiesTTL     time.Duration
	PartiesTTL    time.Duration
	OfficesTTL    time.Duration
	ElectionsTTL  time.Duration
}

// RateLimitConfig holds the general API rate limit
type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// .env is optional; deployed containers pass real env vars
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:   appMode,
		Port:      getEnv("PORT", "3000"),
		SeedData:  getEnvBool("SEED_DATA", true),
		Database:  loadDatabaseConfig(appMode),
		JWT:       loadJWTConfig(appMode),
		Cache:     loadCacheConfig(),
		RateLimit: loadRateLimitConfig(),
	}

	if config.IsProd() && config.JWT.Secret == defaultJWTSecret {
		return nil, fmt.Errorf("PROD_JWT_SECRET must be set in prod mode")
	}

	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

const defaultJWTSecret = "default_jwt_secret"

func modePrefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := modePrefix(mode)

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "promessas_db"),
	}
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	return JWTConfig{
		Secret:          getEnv(modePrefix(mode)+"JWT_SECRET", defaultJWTSecret),
		AccessTokenMins: getEnvInt("ACCESS_TOKEN_MINUTES", 60),
	}
}

// loadCacheConfig reads CACHE_TTL as the default for every list-specific TTL
func loadCacheConfig() CacheConfig {
	defaultTTL := getEnvInt("CACHE_TTL", 300)
	ttl := func(key string) time.Duration {
		return time.Duration(getEnvInt(key, defaultTTL)) * time.Second
	}

	return CacheConfig{
		RedisURL:      strings.TrimSpace(getEnv("REDIS_URL", "")),
		SweepInterval: time.Duration(getEnvInt("CACHE_SWEEP_SECONDS", 1)) * time.Second,
		StatesTTL:     ttl("STATES_CACHE_TTL"),
		CitiesTTL:     ttl("CITIES_CACHE_TTL"),
		PartiesTTL:    ttl("PARTIES_CACHE_TTL"),
		OfficesTTL:    ttl("OFFICES_CACHE_TTL"),
		ElectionsTTL:  ttl("ELECTIONS_CACHE_TTL"),
	}
}

func loadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Max:    getEnvInt("RATE_LIMIT_MAX", 100),
		Window: time.Minute,
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt falls back to the default when the value is missing or not a number
func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(strings.TrimSpace(getEnv(key, "")))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(getEnv(key, "")))
	if err != nil {
		return defaultValue
	}
	return value
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:5173"
	}
	return origins
}
