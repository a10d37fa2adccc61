package common

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/ternarybob/arbor"
	arborcommon "github.com/ternarybob/arbor/common"
	"github.com/ternarybob/arbor/models"
)

var (
	globalLogger arbor.ILogger
	loggerMutex  sync.RWMutex
)

// GetLogger returns the global logger, falling back to a bare console
// logger (and a warning) if InitLogger hasn't run yet.
func GetLogger() arbor.ILogger {
	loggerMutex.RLock()
	if globalLogger != nil {
		loggerMutex.RUnlock()
		return globalLogger
	}
	loggerMutex.RUnlock()

	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	if globalLogger == nil {
		globalLogger = arbor.NewLogger().WithConsoleWriter(createWriterConfig(nil, models.LogWriterTypeConsole, ""))
		globalLogger.Warn().Msg("using fallback logger, InitLogger was never called during startup")
	}
	return globalLogger
}

func InitLogger(logger arbor.ILogger) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	globalLogger = logger
}

// outputsInclude reports whether outputs contains any of the given names.
func outputsInclude(outputs []string, names ...string) bool {
	for _, o := range outputs {
		for _, name := range names {
			if o == name {
				return true
			}
		}
	}
	return false
}

// SetupLogger builds the process-wide logger from config.Logging, writing to
// a logs/ directory next to the running binary when file output is enabled.
// A capture run is a single batch process, not a long-lived server, so
// unlike the teacher's equivalent this never wires a memory writer for
// streaming logs out over a socket — there is no live viewer to stream to.
func SetupLogger(config *Config) arbor.ILogger {
	logger := arbor.NewLogger()

	execPath, err := os.Executable()
	if err != nil {
		logger = logger.WithConsoleWriter(createWriterConfig(config, models.LogWriterTypeConsole, ""))
		logger.Warn().Err(err).Msg("failed to resolve executable path, falling back to console-only logging")
	} else {
		logsDir := filepath.Join(filepath.Dir(execPath), "logs")

		wantsFile := outputsInclude(config.Logging.Output, "file")
		wantsConsole := outputsInclude(config.Logging.Output, "stdout", "console")

		if wantsFile {
			if err := os.MkdirAll(logsDir, 0755); err != nil {
				logger.WithConsoleWriter(createWriterConfig(config, models.LogWriterTypeConsole, "")).
					Warn().Err(err).Str("logs_dir", logsDir).Msg("failed to create logs directory")
			} else {
				logFile := filepath.Join(logsDir, "codescribe.log")
				logger = logger.WithFileWriter(createWriterConfig(config, models.LogWriterTypeFile, logFile))
			}
		}

		if wantsConsole {
			logger = logger.WithConsoleWriter(createWriterConfig(config, models.LogWriterTypeConsole, ""))
		}

		if !wantsFile && !wantsConsole {
			logger = logger.WithConsoleWriter(createWriterConfig(config, models.LogWriterTypeConsole, ""))
			logger.Warn().Strs("configured_outputs", config.Logging.Output).Msg("no visible log outputs configured, falling back to console")
		}
	}

	logger = logger.WithLevelFromString(config.Logging.Level)
	InitLogger(logger)
	return logger
}

// createWriterConfig fills in shared writer settings, applying config's time
// format when set (HH:MM:SS.mmm otherwise, for alignment across lines).
func createWriterConfig(config *Config, writerType models.LogWriterType, filename string) models.WriterConfiguration {
	timeFormat := "15:04:05.000"
	if config != nil && config.Logging.TimeFormat != "" {
		timeFormat = config.Logging.TimeFormat
	}

	return models.WriterConfiguration{
		Type:             writerType,
		FileName:         filename,
		TimeFormat:       timeFormat,
		DisableTimestamp: false,
		MaxSize:          100 * 1024 * 1024,
		MaxBackups:       3,
	}
}

// Stop flushes any remaining context logs before shutdown. Idempotent.
func Stop() {
	arborcommon.Stop()
}
