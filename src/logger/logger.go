// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
//
// This interface supports both CLI and [MCP] server modes, allowing seamless
// switching between human-readable output and structured logging.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stdout, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// StructuredLogger implements Logger on top of [zap], writing one JSON object per line.
//
// It is meant for [MCP] server mode, where stdout carries the protocol: it can be
// silenced entirely or pointed at stderr or a file.
//
// StructuredLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type StructuredLogger struct {
	out    *swapWriter
	zap    *zap.Logger
	silent bool
}

// NewStructuredLogger creates a new structured logger writing to writer.
// A nil writer discards output. When silent is true nothing is written at all.
func NewStructuredLogger(writer io.Writer, silent bool) *StructuredLogger {
	out := &swapWriter{w: orDiscard(writer)}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), out, zapcore.DebugLevel)

	return &StructuredLogger{
		out:    out,
		zap:    zap.New(core),
		silent: silent,
	}
}

// Printf formats and logs an info-level message.
// Output is suppressed if silent mode is enabled.
func (s *StructuredLogger) Printf(format string, v ...any) {
	if s.silent {
		return
	}
	s.zap.Info(fmt.Sprintf(format, v...))
}

// Println logs an info-level message built with fmt.Sprint semantics.
// Output is suppressed if silent mode is enabled.
func (s *StructuredLogger) Println(v ...any) {
	if s.silent {
		return
	}
	s.zap.Info(fmt.Sprint(v...))
}

// SetOutput sets the output destination. A nil writer discards output.
func (s *StructuredLogger) SetOutput(w io.Writer) { s.out.swap(orDiscard(w)) }

// Zap returns the underlying zap logger, or a no-op logger in silent mode.
func (s *StructuredLogger) Zap() *zap.Logger {
	if s.silent {
		return zap.NewNop()
	}
	return s.zap
}

// NewZap builds a leveled zap logger.
//
// Parameters:
//   - level: One of debug, info, warn, error
//   - format: "json" for JSON lines, anything else for console output
//   - w: Destination, nil discards output
//
// Returns:
//   - *zap.Logger: Configured logger
//   - error: Error if level is not recognized
func NewZap(level, format string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var enc zapcore.Encoder
	if format == "json" {
		enc = zapcore.NewJSONEncoder(encoderConfig())
	} else {
		cfg := encoderConfig()
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, &swapWriter{w: orDiscard(w)}, lvl)
	return zap.New(core), nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "message",
		NameKey:        "logger",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

// swapWriter is a zapcore.WriteSyncer whose destination can change at runtime.
type swapWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *swapWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *swapWriter) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.w.(interface{ Sync() error }); ok {
		// Sync on a terminal or pipe returns EINVAL; it carries no information here.
		_ = f.Sync()
	}
	return nil
}

func (s *swapWriter) swap(w io.Writer) {
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}
