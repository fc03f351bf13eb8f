package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level represents a logging level
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name to a Level. Unknown names yield WARN.
func ParseLevel(name string) Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "ERROR":
		return ERROR
	default:
		return WARN
	}
}

// Format represents the log output format
type Format int

const (
	Text Format = iota
	JSON
)

// ParseFormat converts a format name to a Format. Anything but "json" is Text.
func ParseFormat(name string) Format {
	if strings.EqualFold(strings.TrimSpace(name), "json") {
		return JSON
	}
	return Text
}

// Logger handles structured logging. It writes to stderr so stdout only carries results.
type Logger struct {
	out    io.Writer
	level  Level
	format Format
	mu     sync.Mutex
}

// LogConfig contains logger configuration
type LogConfig struct {
	Level  Level
	Format Format
	// Output defaults to os.Stderr when nil
	Output io.Writer
}

var (
	defaultLogger = &Logger{
		out:    os.Stderr,
		level:  WARN,
		format: Text,
	}

	debugColor = color.New(color.FgCyan)
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
)

// Configure sets up the default logger
func Configure(config LogConfig) {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	defaultLogger.level = config.Level
	defaultLogger.format = config.Format
	defaultLogger.out = config.Output
	if defaultLogger.out == nil {
		defaultLogger.out = os.Stderr
	}
}

type logEntry struct {
	Timestamp string      `json:"timestamp"`
	Level     string      `json:"level"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
}

func (l *Logger) log(level Level, msg string, data interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	timestamp := time.Now().Format("2006/01/02 15:04:05")

	if l.format == JSON {
		entry := logEntry{
			Timestamp: timestamp,
			Level:     level.String(),
			Message:   msg,
			Data:      data,
		}
		if err := json.NewEncoder(l.out).Encode(entry); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode log entry: %v\n", err)
		}
		return
	}

	var levelColor *color.Color
	switch level {
	case DEBUG:
		levelColor = debugColor
	case WARN:
		levelColor = warnColor
	case ERROR:
		levelColor = errorColor
	default:
		levelColor = infoColor
	}

	levelStr := levelColor.Sprintf("%-5s", level.String())
	fmt.Fprintf(l.out, "%s %s: %s", timestamp, levelStr, msg)
	if data != nil {
		fmt.Fprintf(l.out, " %+v", data)
	}
	fmt.Fprintln(l.out)
}

func (l *Logger) Debug(msg string, data ...interface{}) {
	l.log(DEBUG, msg, firstOrNil(data))
}

func (l *Logger) Info(msg string, data ...interface{}) {
	l.log(INFO, msg, firstOrNil(data))
}

func (l *Logger) Warn(msg string, data ...interface{}) {
	l.log(WARN, msg, firstOrNil(data))
}

func (l *Logger) Error(msg string, err error, data ...interface{}) {
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	l.log(ERROR, msg, firstOrNil(data))
}

// firstOrNil returns the first element of data if present, nil otherwise
func firstOrNil(data []interface{}) interface{} {
	if len(data) > 0 {
		return data[0]
	}
	return nil
}

// ListStart logs the start of a listing call
func (l *Logger) ListStart(service, region, profile string) {
	l.Info("Starting listing", map[string]interface{}{
		"service": service,
		"region":  region,
		"profile": profile,
	})
}

// ListComplete logs the completion of a listing call
func (l *Logger) ListComplete(service, region string, rowCount int, elapsed time.Duration) {
	l.Info("Listing completed", map[string]interface{}{
		"service":    service,
		"region":     region,
		"row_count":  rowCount,
		"elapsed_ms": elapsed.Milliseconds(),
	})
}

// ItemSkipped logs an item left out of a listing because its describe call was rejected
func (l *Logger) ItemSkipped(service, item string, err error) {
	l.Debug("Skipping item, describe call rejected", itemData(service, item, err))
}

// ItemDenied logs an item listed with an access denied marker instead of its described fields
func (l *Logger) ItemDenied(service, item string, err error) {
	l.Debug("Listing item as access denied, describe call rejected", itemData(service, item, err))
}

func itemData(service, item string, err error) map[string]interface{} {
	data := map[string]interface{}{
		"service": service,
		"item":    item,
	}
	if err != nil {
		data["error"] = err.Error()
	}
	return data
}

// Default logger methods
func Debug(msg string, data ...interface{}) {
	defaultLogger.Debug(msg, data...)
}

func Info(msg string, data ...interface{}) {
	defaultLogger.Info(msg, data...)
}

func Warn(msg string, data ...interface{}) {
	defaultLogger.Warn(msg, data...)
}

func Error(msg string, err error, data ...interface{}) {
	defaultLogger.Error(msg, err, data...)
}

func ListStart(service, region, profile string) {
	defaultLogger.ListStart(service, region, profile)
}

func ListComplete(service, region string, rowCount int, elapsed time.Duration) {
	defaultLogger.ListComplete(service, region, rowCount, elapsed)
}

func ItemSkipped(service, item string, err error) {
	defaultLogger.ItemSkipped(service, item, err)
}

func ItemDenied(service, item string, err error) {
	defaultLogger.ItemDenied(service, item, err)
}
