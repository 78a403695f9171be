package logger

// Log levels accepted by LOG_LEVEL
const (
	LevelDebug   = "debug"
	LevelInfo    = "info"
	LevelWarn    = "warn"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Output formats accepted by LOG_FORMAT
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Service identity defaults
const (
	DefaultServiceName = "pet-calendar"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
)

// Attribute keys attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
