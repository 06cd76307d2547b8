package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MikeBiancalana/datefield/internal/config"
)

// Config controls where and how log records are written.
type Config struct {
	Level  string
	Format string
	// File is the log destination. Empty means stderr, except in TUI mode
	// where it defaults to <data dir>/logs/datefield.log.
	File string
	// TUIMode keeps log output off the terminal the UI is drawing on.
	TUIMode bool
}

var (
	mu        sync.RWMutex
	logger    *slog.Logger
	logLevel  slog.Level
	logFormat string
	logFile   string
	tuiMode   bool
	output    io.Closer
)

func init() {
	Initialize()
}

// Initialize configures the logger from LOG_LEVEL, LOG_FORMAT and LOG_FILE.
func Initialize() {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		levelStr = "INFO"
		if v := os.Getenv("DATEFIELD_DEBUG"); v == "1" || v == "true" {
			levelStr = "DEBUG"
		}
	}

	cfg := Config{
		Level:  levelStr,
		Format: os.Getenv("LOG_FORMAT"),
		File:   os.Getenv("LOG_FILE"),
	}
	if err := InitializeWithConfig(cfg); err != nil {
		// fall back to stderr rather than running without a logger
		_ = InitializeWithConfig(Config{Level: levelStr, Format: cfg.Format})
	}
}

// InitializeWithConfig replaces the global logger.
func InitializeWithConfig(cfg Config) error {
	level := parseLevel(cfg.Level)

	format := strings.ToLower(cfg.Format)
	if format == "" {
		format = "text"
	}

	file := cfg.File
	if file == "" && cfg.TUIMode {
		dir, err := config.LogDir()
		if err != nil {
			return fmt.Errorf("resolving log directory: %w", err)
		}
		file = filepath.Join(dir, config.AppName+".log")
	}

	var w io.Writer = os.Stderr
	var closer io.Closer
	if file != "" {
		f, err := openLogFile(file)
		if err != nil {
			if cfg.TUIMode {
				return fmt.Errorf("TUI mode requires file-based logging: %w", err)
			}
			return err
		}
		w = f
		closer = f
	}

	mu.Lock()
	defer mu.Unlock()
	if output != nil {
		output.Close()
	}
	logger = slog.New(newHandler(w, format, level))
	logLevel = level
	logFormat = format
	logFile = file
	tuiMode = cfg.TUIMode
	output = closer
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

func newHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Close releases the log file, if any, and sends further records to
// stderr. It is safe to call more than once.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if output == nil {
		return nil
	}
	err := output.Close()
	output = nil
	logFile = ""
	logger = slog.New(newHandler(os.Stderr, logFormat, logLevel))
	return err
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func GetLogger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func GetLevel() slog.Level {
	mu.RLock()
	defer mu.RUnlock()
	return logLevel
}

func GetFormat() string {
	mu.RLock()
	defer mu.RUnlock()
	return logFormat
}

// GetLogFile returns the active log file, or "" when logging to stderr.
func GetLogFile() string {
	mu.RLock()
	defer mu.RUnlock()
	return logFile
}

// IsTUIMode reports whether logging was configured for a running TUI.
func IsTUIMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return tuiMode
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}
