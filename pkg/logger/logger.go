package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the severity level of log messages.
type LogLevel int

// Log level constants defining message severity.
const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// String returns the upper-case level name.
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "INFO"
}

// ParseLogLevel converts a string log level to its LogLevel constant.
func ParseLogLevel(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return INFO
	}
}

// Logger writes level-filtered messages to stdout and a rotated file.
type Logger struct {
	out   *log.Logger
	level LogLevel
	mu    sync.RWMutex
}

var (
	instance *Logger
	once     sync.Once
)

// InitWithConfig initializes the global logger with log rotation settings.
// An empty logPath logs to stdout only.
func InitWithConfig(logPath string, level LogLevel, maxSize, maxBackups, maxAge int, compress bool) {
	once.Do(func() {
		instance = NewLoggerWithConfig(logPath, level, maxSize, maxBackups, maxAge, compress)
	})
}

// NewLoggerWithConfig creates a logger writing to stdout and a lumberjack-rotated file.
func NewLoggerWithConfig(logPath string, level LogLevel, maxSize, maxBackups, maxAge int, compress bool) *Logger {
	if logPath == "" {
		return NewLoggerWithWriter(os.Stdout, level)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Fatalf("cannot create directory log: %v", err)
	}

	rotated := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   compress,
	}
	return NewLoggerWithWriter(io.MultiWriter(os.Stdout, rotated), level)
}

// NewLoggerWithWriter creates a logger on an arbitrary writer.
func NewLoggerWithWriter(w io.Writer, level LogLevel) *Logger {
	return &Logger{
		out:   log.New(w, "", log.LstdFlags|log.Lshortfile),
		level: level,
	}
}

// SetLevel changes the minimum log level for filtering messages.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current minimum log level.
func (l *Logger) GetLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *Logger) enabled(level LogLevel) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level >= l.level
}

// logf writes one line; depth is the caller frame reported by Lshortfile.
func (l *Logger) logf(depth int, level LogLevel, format string, v ...interface{}) {
	if !l.enabled(level) {
		return
	}
	l.out.Output(depth+1, "["+level.String()+"] "+fmt.Sprintf(format, v...))
	if level == FATAL {
		os.Exit(1)
	}
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.logf(2, DEBUG, format, v...) }
func (l *Logger) Infof(format string, v ...interface{})  { l.logf(2, INFO, format, v...) }
func (l *Logger) Warnf(format string, v ...interface{})  { l.logf(2, WARN, format, v...) }
func (l *Logger) Errorf(format string, v ...interface{}) { l.logf(2, ERROR, format, v...) }
func (l *Logger) Fatalf(format string, v ...interface{}) { l.logf(2, FATAL, format, v...) }

// Global convenience functions. They are no-ops until InitWithConfig runs.

// Debugf logs a formatted debug-level message using the global logger instance.
func Debugf(format string, v ...interface{}) {
	if instance != nil {
		instance.logf(2, DEBUG, format, v...)
	}
}

// Infof logs a formatted info-level message using the global logger instance.
func Infof(format string, v ...interface{}) {
	if instance != nil {
		instance.logf(2, INFO, format, v...)
	}
}

// Warnf logs a formatted warning-level message using the global logger instance.
func Warnf(format string, v ...interface{}) {
	if instance != nil {
		instance.logf(2, WARN, format, v...)
	}
}

// Errorf logs a formatted error-level message using the global logger instance.
func Errorf(format string, v ...interface{}) {
	if instance != nil {
		instance.logf(2, ERROR, format, v...)
	}
}

// Fatalf logs a formatted fatal-level message and exits the program.
func Fatalf(format string, v ...interface{}) {
	if instance != nil {
		instance.logf(2, FATAL, format, v...)
	}
	log.Fatalf(format, v...)
}

// SetLevel changes the minimum log level for the global logger instance.
func SetLevel(level LogLevel) {
	if instance != nil {
		instance.SetLevel(level)
	}
}

// GetLevel returns the current minimum log level of the global logger instance.
func GetLevel() LogLevel {
	if instance != nil {
		return instance.GetLevel()
	}
	return INFO
}
