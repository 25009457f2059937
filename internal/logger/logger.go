// Package logger builds the zap logger used for diagnostics about a lint run.
// Logs go to stderr so that stdout carries only lint output.
package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format is the log encoding.
type Format string

const (
	FormatConsole Format = "CONSOLE"
	FormatJSON    Format = "JSON"
)

const (
	// EnvLevel overrides the level when no flag is given.
	EnvLevel = "HEADERLINT_LOG_LEVEL"
	// EnvFormat selects CONSOLE or JSON.
	EnvFormat = "HEADERLINT_LOG_FORMAT"
)

// ParseLevel converts a level name to zapcore.Level. Unknown names map to
// warn, the CLI default.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// FormatFromEnv returns the format named by EnvFormat, or def.
func FormatFromEnv(def Format) Format {
	f := Format(strings.ToUpper(os.Getenv(EnvFormat)))
	if f != FormatConsole && f != FormatJSON {
		return def
	}
	return f
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, level string, format Format) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "component",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
	}

	var encoder zapcore.Encoder
	if format == FormatJSON {
		encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.ConsoleSeparator = " | "
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(ParseLevel(level)))
	return zap.New(core).Named("headerlint")
}

// FromEnv creates a logger writing to w. An empty level falls back to
// EnvLevel.
func FromEnv(w io.Writer, level string) *zap.Logger {
	if level == "" {
		level = os.Getenv(EnvLevel)
	}
	return New(w, level, FormatFromEnv(FormatConsole))
}
