package logger

import (
	"log/slog"
	"strings"
)

// Config holds the settings for the process logger. Level is one of
// debug, info, warn or error and Format is json or text.
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig builds a Config from the values the app config resolved.
// Source locations are only added in the dev environment.
func NewConfig(level, format, serviceName, version, environment string) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   environment == DefaultEnvironment,
	}
}

// DefaultConfig is used before the app config has been read.
func DefaultConfig() Config {
	return NewConfig(LevelInfo, FormatText, DefaultServiceName, DefaultVersion, DefaultEnvironment)
}

// LogLevel maps Level onto slog. Unknown values fall back to info.
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn, LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == FormatJSON
}

// BaseAttributes returns the service identity attached to every record.
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
