package util

import (
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"srcmetrics/src/config"
)

// LogLevel represents logging level
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// Logger provides leveled printf-style logging on top of commonlog
type Logger struct {
	level LogLevel
	log   commonlog.Logger
}

// ParseLogLevel converts a config level name, defaulting to info
func ParseLogLevel(name string) LogLevel {
	switch name {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// verbosity maps a level onto commonlog's verbosity scale
func (l LogLevel) verbosity() int {
	switch l {
	case LogLevelDebug:
		return 2
	case LogLevelWarn:
		return -1
	case LogLevelError:
		return -2
	default:
		return 1
	}
}

// NewLogger configures the commonlog backend from cfg and returns a logger
func NewLogger(cfg config.LoggingConfig) *Logger {
	level := ParseLogLevel(cfg.Level)

	var path *string
	if cfg.File != "" {
		file := cfg.File
		path = &file
	}
	commonlog.Configure(level.verbosity(), path)

	return &Logger{
		level: level,
		log:   commonlog.GetLogger("srcmetrics"),
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	if l.level <= LogLevelDebug {
		l.log.Debugf(msg, args...)
	}
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	if l.level <= LogLevelInfo {
		l.log.Infof(msg, args...)
	}
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	if l.level <= LogLevelWarn {
		l.log.Warningf(msg, args...)
	}
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	if l.level <= LogLevelError {
		l.log.Errorf(msg, args...)
	}
}

// DefaultLogger is the package-level default logger
var DefaultLogger = NewLogger(config.LoggingConfig{Level: "warn"})

// SetDefaultLogger updates the default logger with new configuration
func SetDefaultLogger(cfg config.LoggingConfig) {
	DefaultLogger = NewLogger(cfg)
}

// GetLevel returns the current log level as a string
func (l *Logger) GetLevel() string {
	switch l.level {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "info"
	}
}

// Debug logs using the default logger
func Debug(msg string, args ...any) {
	DefaultLogger.Debug(msg, args...)
}

// Info logs using the default logger
func Info(msg string, args ...any) {
	DefaultLogger.Info(msg, args...)
}

// Warn logs using the default logger
func Warn(msg string, args ...any) {
	DefaultLogger.Warn(msg, args...)
}

// Error logs using the default logger
func Error(msg string, args ...any) {
	DefaultLogger.Error(msg, args...)
}
