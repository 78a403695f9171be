package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/PetCalendar_Go/internal/config"
	"github.com/osse101/PetCalendar_Go/internal/logger"
)

// SetupLogger installs the process logger. When LOG_DIR is set the output
// is also written to a timestamped session file there and older session
// files are pruned. The returned file, if any, must be closed by the caller.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	var (
		out     io.Writer = os.Stdout
		logFile *os.File
	)

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}

		// Leave room for the file about to be created
		cleanupLogs(cfg.LogDir, LogFileRetentionCount-1)

		name := fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat))
		f, err := os.OpenFile(filepath.Join(cfg.LogDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(os.Stdout, f)
	}

	loggerConfig := cfg.LoggerConfig()
	logger.InitLoggerWithWriter(loggerConfig, out)

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel(), "format", cfg.LogFormat)
	slog.Info(LogMsgStartingApp,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"backend", cfg.StoreBackend)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"data_dir", cfg.DataDir,
		"db_host", cfg.DBHost,
		"redis_addr", cfg.RedisAddr,
		"reward_preset", cfg.RewardPreset)

	for _, warning := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", warning)
	}

	return logFile, nil
}

// cleanupLogs deletes the oldest session files so that at most keep remain.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keep {
		return
	}

	// Timestamped names sort chronologically
	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
