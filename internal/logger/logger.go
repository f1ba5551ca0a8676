package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide logger instance. Init must be called before use;
// until then it writes discarded output so early failures stay quiet.
var Logger = log.NewWithOptions(io.Discard, log.Options{})

// Config holds logger configuration.
type Config struct {
	// Debug lowers the level to debug and echoes output to stderr.
	Debug bool
	// BaseDir is the calog data directory; logs go to BaseDir/logs/.
	BaseDir string
}

// Init initializes the global logger with the given configuration.
func Init(cfg Config) error {
	logDir := filepath.Join(cfg.BaseDir, "logs")
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "calog.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := log.InfoLevel
	writer := io.Writer(fileWriter)
	if cfg.Debug {
		level = log.DebugLevel
		writer = io.MultiWriter(os.Stderr, fileWriter)
	}

	Logger = log.NewWithOptions(writer, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return nil
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, kv ...any) { Logger.Debug(msg, kv...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, kv ...any) { Logger.Info(msg, kv...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, kv ...any) { Logger.Warn(msg, kv...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, kv ...any) { Logger.Error(msg, kv...) }
