// Package logger provides structured logging utilities with consistent formatting
package logger

import (
	"log"
	"strings"
)

// Logger provides structured logging with consistent formatting
type Logger struct {
	prefix string
}

// NewLogger creates a new logger with an optional prefix
func NewLogger(prefix string) *Logger {
	return &Logger{prefix: prefix}
}

func (l *Logger) formatMessage(level, msg string) string {
	prefix := ""
	if l.prefix != "" {
		prefix = "[" + l.prefix + "] "
	}
	return level + " " + prefix + msg
}

// Info logs an informational message
func (l *Logger) Info(msg string, args ...interface{}) {
	log.Printf(l.formatMessage("INFO", msg), args...)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string, args ...interface{}) {
	log.Printf(l.formatMessage("WARN", msg), args...)
}

// Error logs an error message with optional error object
func (l *Logger) Error(msg string, err error, args ...interface{}) {
	if err != nil {
		allArgs := append(args, err)
		log.Printf(l.formatMessage("ERROR", msg+" - %v"), allArgs...)
		return
	}
	log.Printf(l.formatMessage("ERROR", msg), args...)
}

// Security logs a security-related event, e.g. a blocked mutation
// or a rate-limited login.
func (l *Logger) Security(event string, details map[string]interface{}) {
	msg := l.formatMessage("SECURITY", event)
	if len(details) > 0 {
		detailStrs := make([]string, 0, len(details))
		args := make([]interface{}, 0, len(details))
		for key, value := range details {
			detailStrs = append(detailStrs, key+"=%v")
			args = append(args, value)
		}
		log.Printf(msg+" - "+strings.Join(detailStrs, " "), args...)
		return
	}
	log.Print(msg)
}

// Fatal logs a fatal error and exits
func (l *Logger) Fatal(msg string, err error, args ...interface{}) {
	if err != nil {
		allArgs := append(args, err)
		log.Fatalf(l.formatMessage("FATAL", msg+" - %v"), allArgs...)
	}
	log.Fatalf(l.formatMessage("FATAL", msg), args...)
}

// Default logger instance
var Default = NewLogger("")

// Convenience functions for default logger
func Info(msg string, args ...interface{})                  { Default.Info(msg, args...) }
func Warning(msg string, args ...interface{})               { Default.Warning(msg, args...) }
func Error(msg string, err error, args ...interface{})      { Default.Error(msg, err, args...) }
func Security(event string, details map[string]interface{}) { Default.Security(event, details) }
func Fatal(msg string, err error, args ...interface{})      { Default.Fatal(msg, err, args...) }
