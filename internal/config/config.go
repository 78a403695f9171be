package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/PetCalendar_Go/internal/database"
	"github.com/osse101/PetCalendar_Go/internal/logger"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
	LogDir      string // empty logs to stdout only

	StoreBackend string
	DataDir      string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBMaxConns int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CacheSize int // 0 disables the read cache
	CacheTTL  time.Duration

	RewardPreset string
	RewardsFile  string

	APIKey         string // shared secret with the auth proxy; empty disables the check
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:      getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:     getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment:   getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:   getEnv("SERVICE_NAME", logger.DefaultServiceName),
		Version:       getEnv("VERSION", DefaultVersion),
		LogDir:        getEnv("LOG_DIR", ""),
		StoreBackend:  getEnv("STORE_BACKEND", DefaultBackend),
		DataDir:       getEnv("DATA_DIR", DefaultDataDir),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", "petcalendar"),
		DBMaxConns:    getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		RedisAddr:     getEnv("REDIS_ADDR", DefaultRedisAddr),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		CacheSize:     getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
		RewardPreset:  getEnv("REWARD_PRESET", DefaultRewardPreset),
		RewardsFile:   getEnv("REWARDS_FILE", ""),
		APIKey:        getEnv("API_KEY", ""),
	}

	for _, proxy := range strings.Split(getEnv("TRUSTED_PROXIES", ""), ",") {
		if proxy = strings.TrimSpace(proxy); proxy != "" {
			cfg.TrustedProxies = append(cfg.TrustedProxies, proxy)
		}
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", DefaultCacheTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL value: %w", err)
	}
	cfg.CacheTTL = ttl

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when
// unset or malformed.
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// PoolConfig derives the postgres pool settings for the document store.
func (c *Config) PoolConfig() database.PoolConfig {
	return database.NewPoolConfig(c.GetDBConnString(), c.DBMaxConns)
}

// LoggerConfig derives the logger settings.
func (c *Config) LoggerConfig() logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, c.ServiceName, c.Version, c.Environment)
}
