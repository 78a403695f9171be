package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept, including the new one
	LogFileRetentionCount = 10
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingApp         = "Starting pet calendar"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Store Configuration
// =============================================================================

const (
	// StoreConnectTimeout bounds the initial backend connection and migrations
	StoreConnectTimeout = 30 * time.Second
)

// Log and error messages for store initialization
const (
	LogMsgStoreOpened         = "Store opened"
	LogMsgMigrationsApplied   = "Database migrations applied"
	ErrMsgUnknownBackend      = "unknown store backend"
	ErrMsgFailedOpenStore     = "failed to open store"
	ErrMsgFailedMigrate       = "failed to migrate database"
	ErrMsgFailedConnectRedis  = "failed to connect to redis"
	ErrMsgFailedConnectDB     = "failed to connect to database"
	ErrMsgFailedLoadRewards   = "failed to load reward tables"
	ErrMsgFailedLoadCatalogue = "failed to load pet catalogue"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgClosingStreams       = "Closing event streams..."
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingStore         = "Closing store..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoreCloseFailed     = "Store close failed"
)
