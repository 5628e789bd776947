// Package logging configures the zerolog loggers used across shades.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config controls log level and output format.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig keeps the CLI quiet unless something needs attention.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: FormatConsole,
	}
}

var (
	mu     sync.RWMutex
	logger = newLogger(os.Stderr, DefaultConfig())
)

// Init configures the root logger from cfg, writing to stderr.
func Init(cfg Config) error {
	return InitWithWriter(os.Stderr, cfg)
}

// InitWithWriter configures the root logger from cfg, writing to out.
func InitWithWriter(out io.Writer, cfg Config) error {
	if cfg.Level == "" {
		cfg.Level = DefaultConfig().Level
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	switch cfg.Format {
	case "", FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q (expected %s or %s)", cfg.Format, FormatConsole, FormatJSON)
	}

	mu.Lock()
	logger = newLogger(out, cfg)
	mu.Unlock()
	return nil
}

// SetOutput redirects the root logger, keeping its level. Intended for tests.
func SetOutput(out io.Writer) {
	mu.Lock()
	logger = logger.Output(out)
	mu.Unlock()
}

// Logger returns a copy of the root logger.
func Logger() *zerolog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	return &l
}

// Component returns a logger tagged with the component name.
func Component(name string) *zerolog.Logger {
	l := Logger().With().Str("component", name).Logger()
	return &l
}

func newLogger(out io.Writer, cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
