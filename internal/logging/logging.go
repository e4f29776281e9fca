// Package logging provides the zerolog logger shared by filmlog packages.
//
// The terminal UI owns stdout, so the CLI points the logger at a file before
// starting the program:
//
//	closer, err := logging.Init(logging.Config{Level: "debug", File: "filmlog.log"})
//	if err != nil { ... }
//	defer closer.Close()
//
//	logging.Logger().Info().Str("list", "watchlist").Msg("filters applied")
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

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `toml:"level"`

	// Format is json or console.
	Format string `toml:"format"`

	// File receives log output when set; stderr otherwise.
	File string `toml:"file"`

	// Output overrides File, used by tests.
	Output io.Writer `toml:"-"`
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		File:   "filmlog.log",
	}
}

var (
	logger zerolog.Logger
	mu     sync.RWMutex
)

func init() {
	logger = zerolog.New(io.Discard)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init configures the package logger. The returned closer releases the log
// file if one was opened.
func Init(cfg Config) (io.Closer, error) {
	out := cfg.Output
	var closer io.Closer = nopCloser{}
	if out == nil {
		if cfg.File != "" {
			f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return nil, fmt.Errorf("failed to open log file: %w", err)
			}
			out, closer = f, f
		} else {
			out = os.Stderr
		}
	}

	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05", NoColor: true}
	}

	zerolog.TimeFieldFormat = time.RFC3339
	l := zerolog.New(out).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()

	mu.Lock()
	logger = l
	mu.Unlock()
	return closer, nil
}

// Logger returns the configured logger.
func Logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := logger
	return &l
}

// With returns a child logger tagged with the component name.
func With(component string) zerolog.Logger {
	return Logger().With().Str("component", component).Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
