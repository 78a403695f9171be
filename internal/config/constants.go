package config

// Store backends
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Defaults applied when a variable is unset
const (
	DefaultPort         = 8080
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DefaultEnvironment  = "dev"
	DefaultVersion      = "dev"
	DefaultBackend      = BackendFile
	DefaultDataDir      = "data"
	DefaultDBMaxConns   = 10
	DefaultRedisAddr    = "localhost:6379"
	DefaultCacheSize    = 1024
	DefaultCacheTTL     = "5m"
	DefaultRewardPreset = "classic"
)
