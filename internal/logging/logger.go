// file: internal/logging/logger.go
// version: 2.0.0
// guid: 0f6d2b8e-71a4-4c39-9e15-d3a7b2c8f041

package logging

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel int32

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var minLevel atomic.Int32

func init() {
	minLevel.Store(int32(InfoLevel))
}

// ParseLevel maps a config value to a LogLevel. Unknown values yield InfoLevel.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// SetLevel sets the process-wide minimum level.
func SetLevel(level LogLevel) {
	minLevel.Store(int32(level))
}

// Level returns the process-wide minimum level.
func Level() LogLevel {
	return LogLevel(minLevel.Load())
}

func enabled(level LogLevel) bool {
	return level >= Level()
}

func (l LogLevel) tag() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Debugf logs at debug level.
func Debugf(format string, args ...any) { logf(DebugLevel, format, args...) }

// Infof logs at info level.
func Infof(format string, args ...any) { logf(InfoLevel, format, args...) }

// Warnf logs at warn level.
func Warnf(format string, args ...any) { logf(WarnLevel, format, args...) }

// Errorf logs at error level.
func Errorf(format string, args ...any) { logf(ErrorLevel, format, args...) }

func logf(level LogLevel, format string, args ...any) {
	if !enabled(level) {
		return
	}
	log.Printf("[%s] %s", level.tag(), fmt.Sprintf(format, args...))
}

// ServiceLogger provides logging for service layer operations
type ServiceLogger struct {
	serviceName string
	requestID   string
}

// NewServiceLogger creates a new service logger
func NewServiceLogger(serviceName, requestID string) *ServiceLogger {
	return &ServiceLogger{
		serviceName: serviceName,
		requestID:   requestID,
	}
}

// RequestID returns the request ID this logger tags its lines with.
func (sl *ServiceLogger) RequestID() string {
	return sl.requestID
}

// LogOperation logs the execution of a service operation
func (sl *ServiceLogger) LogOperation(operation string, details map[string]any) {
	if !enabled(InfoLevel) {
		return
	}
	detailStr := ""
	if len(details) > 0 {
		detailStr = fmt.Sprintf(" %v", details)
	}
	log.Printf("[SERVICE] %s.%s%s [request-id: %s]",
		sl.serviceName, operation, detailStr, sl.requestID)
}

// LogWarning logs a non-fatal condition from the service
func (sl *ServiceLogger) LogWarning(operation string, message string) {
	if !enabled(WarnLevel) {
		return
	}
	log.Printf("[SERVICE-WARN] %s.%s: %s [request-id: %s]",
		sl.serviceName, operation, message, sl.requestID)
}

// LogError logs an error from the service
func (sl *ServiceLogger) LogError(operation string, err error) {
	if !enabled(ErrorLevel) {
		return
	}
	log.Printf("[SERVICE-ERROR] %s.%s: %v [request-id: %s]",
		sl.serviceName, operation, err, sl.requestID)
}

// LogDebug logs a debug message from the service
func (sl *ServiceLogger) LogDebug(operation string, message string) {
	if !enabled(DebugLevel) {
		return
	}
	log.Printf("[SERVICE-DEBUG] %s.%s: %s [request-id: %s]",
		sl.serviceName, operation, message, sl.requestID)
}

// LogDatabaseOperation logs a database operation with its performance
func LogDatabaseOperation(operation string, table string, duration time.Duration, rowsAffected int64, err error) {
	if err != nil {
		if enabled(ErrorLevel) {
			log.Printf("[DB-ERROR] %s on %s failed in %v: %v", operation, table, duration, err)
		}
		return
	}
	if enabled(DebugLevel) {
		log.Printf("[DB] %s on %s completed in %v (%d rows)", operation, table, duration, rowsAffected)
	}
}

// LogProviderCall logs one request to an external metadata provider.
func LogProviderCall(provider, isbn string, duration time.Duration, err error) {
	if err != nil {
		if enabled(WarnLevel) {
			log.Printf("[PROVIDER-ERROR] %s lookup for %s failed in %v: %v", provider, isbn, duration, err)
		}
		return
	}
	if enabled(DebugLevel) {
		log.Printf("[PROVIDER] %s lookup for %s completed in %v", provider, isbn, duration)
	}
}
