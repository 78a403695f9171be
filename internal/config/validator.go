package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate rejects settings the server cannot start with. All problems are
// reported at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	switch c.StoreBackend {
	case BackendMemory:
	case BackendFile:
		if strings.TrimSpace(c.DataDir) == "" {
			errs = append(errs, errors.New("DATA_DIR must be set for the file backend"))
		}
	case BackendPostgres:
		if c.DBHost == "" || c.DBName == "" {
			errs = append(errs, errors.New("DB_HOST and DB_NAME must be set for the postgres backend"))
		}
		if c.DBMaxConns < 1 {
			errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns))
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			errs = append(errs, errors.New("REDIS_ADDR must be set for the redis backend"))
		}
		if c.RedisDB < 0 {
			errs = append(errs, fmt.Errorf("REDIS_DB must not be negative, got %d", c.RedisDB))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_BACKEND %q (want memory, file, postgres or redis)", c.StoreBackend))
	}

	if c.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("CACHE_SIZE must not be negative, got %d", c.CacheSize))
	}
	if c.CacheSize > 0 && c.CacheTTL <= 0 {
		errs = append(errs, errors.New("CACHE_TTL must be positive when the cache is enabled"))
	}

	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("unknown LOG_FORMAT %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// Warnings returns non-fatal notes about risky settings.
func (c *Config) Warnings() []string {
	var warnings []string

	if c.StoreBackend == BackendMemory && c.Environment != DefaultEnvironment {
		warnings = append(warnings, "STORE_BACKEND=memory loses all data on restart")
	}
	if c.StoreBackend == BackendPostgres && c.DBPassword == "postgres" {
		warnings = append(warnings, "DB_PASSWORD is using the default value - please use a secure password")
	}
	if c.APIKey == "" && c.Environment != DefaultEnvironment {
		warnings = append(warnings, "API_KEY is empty - the X-Username header is trusted from any client")
	}
	if c.StoreBackend == BackendFile && c.CacheSize == 0 {
		warnings = append(warnings, "file backend without CACHE_SIZE re-reads JSON files on every request")
	}

	return warnings
}
