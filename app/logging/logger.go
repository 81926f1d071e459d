package logging

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"
)

// Logger is a central leveled logger. Every accepted event is recorded
// in the Store for the UI and written as a formatted line to an
// optional io.Writer (typically a log file). The writer-side level and
// the UI display threshold are independent: the Store retains whatever
// the Logger accepts, and the UI filters at read time.
type Logger struct {
	mu     sync.Mutex
	store  *Store
	writer io.Writer
	goLog  *log.Logger
	level  LogLevel
}

// NewLogger creates a Logger backed by a store of the given capacity.
func NewLogger(maxLen int) *Logger {
	l := &Logger{
		store:  NewStore(maxLen),
		writer: io.Discard,
		level:  LevelInfo,
	}
	l.goLog = log.New(l, "", 0) // The logger writes through our Write method.
	return l
}

// Write implements io.Writer so the standard log package can write
// through the Logger to the configured destination.
func (l *Logger) Write(p []byte) (n int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.writer == nil {
		return len(p), nil
	}
	return l.writer.Write(p)
}

// SetWriter sets the output destination for formatted log lines.
func (l *Logger) SetWriter(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer = w
}

// SetLevel sets the minimum level the logger accepts.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the minimum level the logger accepts.
func (l *Logger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Store returns the internal log history store.
func (l *Logger) Store() *Store {
	return l.store
}

// log is the internal handler for variadic logging.
func (l *Logger) log(level LogLevel, v ...interface{}) {
	if level < l.Level() {
		return
	}
	// Use fmt.Sprintln to handle the slice of interfaces.
	message := strings.TrimSuffix(fmt.Sprintln(v...), "\n")
	l.emit(level, message)
}

// logf is the internal handler for formatted logging.
func (l *Logger) logf(level LogLevel, format string, v ...interface{}) {
	if level < l.Level() {
		return
	}
	l.emit(level, fmt.Sprintf(format, v...))
}

func (l *Logger) emit(level LogLevel, message string) {
	l.store.Push(level, message)
	logLine := fmt.Sprintf("%s %-5s %s", time.Now().Format("15:04:05.000"), level.String(), message)
	l.goLog.Println(logLine)
}

// Trace logs a trace message.
func (l *Logger) Trace(v ...interface{}) {
	l.log(LevelTrace, v...)
}

// Tracef logs a formatted trace message.
func (l *Logger) Tracef(format string, v ...interface{}) {
	l.logf(LevelTrace, format, v...)
}

// Debug logs a debug message.
func (l *Logger) Debug(v ...interface{}) {
	l.log(LevelDebug, v...)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.logf(LevelDebug, format, v...)
}

// Info logs an informational message.
func (l *Logger) Info(v ...interface{}) {
	l.log(LevelInfo, v...)
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.logf(LevelInfo, format, v...)
}

// Warn logs a warning message.
func (l *Logger) Warn(v ...interface{}) {
	l.log(LevelWarn, v...)
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.logf(LevelWarn, format, v...)
}

// Error logs an error message.
func (l *Logger) Error(v ...interface{}) {
	l.log(LevelError, v...)
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logf(LevelError, format, v...)
}

// ---- Global / Default Logger ----

var defaultLogger = NewLogger(DefaultMaxLen)

// Default returns the default logger instance.
func Default() *Logger {
	return defaultLogger
}

// SetDefault replaces the default logger instance.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}

// Trace logs a trace message using the default logger.
func Trace(v ...interface{}) {
	defaultLogger.Trace(v...)
}

// Tracef logs a formatted trace message using the default logger.
func Tracef(format string, v ...interface{}) {
	defaultLogger.Tracef(format, v...)
}

// Debug logs a debug message using the default logger.
func Debug(v ...interface{}) {
	defaultLogger.Debug(v...)
}

// Debugf logs a formatted debug message using the default logger.
func Debugf(format string, v ...interface{}) {
	defaultLogger.Debugf(format, v...)
}

// Info logs an informational message using the default logger.
func Info(v ...interface{}) {
	defaultLogger.Info(v...)
}

// Infof logs a formatted informational message using the default logger.
func Infof(format string, v ...interface{}) {
	defaultLogger.Infof(format, v...)
}

// Warn logs a warning message using the default logger.
func Warn(v ...interface{}) {
	defaultLogger.Warn(v...)
}

// Warnf logs a formatted warning message using the default logger.
func Warnf(format string, v ...interface{}) {
	defaultLogger.Warnf(format, v...)
}

// Error logs an error message using the default logger.
func Error(v ...interface{}) {
	defaultLogger.Error(v...)
}

// Errorf logs a formatted error message using the default logger.
func Errorf(format string, v ...interface{}) {
	defaultLogger.Errorf(format, v...)
}
