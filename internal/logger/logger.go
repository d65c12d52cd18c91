package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logger    *slog.Logger
	logLevel  slog.Level
	logFormat string
	logFile   string
	tuiMode   bool
	output    io.Closer
	mu        sync.RWMutex
	once      sync.Once
)

// Config controls where and how log records are written
type Config struct {
	Level  string // DEBUG, INFO, WARN, ERROR
	Format string // text or json
	File   string // explicit log file; empty picks a default in TUI mode
	// TUIMode sends logs to a file, since stderr belongs to the terminal UI
	TUIMode bool
}

func init() {
	Initialize()
}

// Initialize sets up a stderr logger from LOG_LEVEL, LOG_FORMAT and DATESPAN_DEBUG
func Initialize() {
	once.Do(func() {
		if err := InitializeWithConfig(ConfigFromEnv()); err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		}
	})
}

// ConfigFromEnv reads logger settings from the environment
func ConfigFromEnv() Config {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		levelStr = os.Getenv("DATESPAN_DEBUG")
		if levelStr == "1" || levelStr == "true" {
			levelStr = "DEBUG"
		} else {
			levelStr = "INFO"
		}
	}

	format := os.Getenv("LOG_FORMAT")
	if format == "" {
		format = "text"
	}

	return Config{
		Level:  levelStr,
		Format: format,
		File:   os.Getenv("LOG_FILE"),
	}
}

// InitializeWithConfig (re)builds the logger. Any previously opened log file
// is closed. In TUI mode a log file is mandatory.
func InitializeWithConfig(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	file := cfg.File
	if cfg.TUIMode && file == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("TUI mode requires file-based logging: %w", err)
		}
		file = filepath.Join(home, ".datespan", "logs", "datespan.log")
	}

	var out io.Writer = os.Stderr
	var closer io.Closer
	if file != "" {
		f, err := openLogFile(file)
		if err != nil {
			if cfg.TUIMode {
				return fmt.Errorf("TUI mode requires file-based logging: %w", err)
			}
			return fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closer = f
	}

	if output != nil {
		output.Close()
	}
	output = closer

	logLevel = parseLevel(cfg.Level)
	logFormat = strings.ToLower(cfg.Format)
	if logFormat != "json" {
		logFormat = "text"
	}
	logFile = file
	tuiMode = cfg.TUIMode

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if logFormat == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger = slog.New(handler)
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Close releases the log file, if any. Safe to call more than once.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if output == nil {
		return nil
	}
	err := output.Close()
	output = nil
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	return err
}

func GetLogger() *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l == nil {
		Initialize()
		mu.RLock()
		l = logger
		mu.RUnlock()
	}
	return l
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

func GetLogFile() string {
	mu.RLock()
	defer mu.RUnlock()
	return logFile
}

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
