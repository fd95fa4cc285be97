// Package log builds the process logger.
//
// Stdout carries the MCP protocol, so the default sink is stderr.
package log

import (
	"io"
	"os"

	"gitlab.com/tozd/go/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log level constants
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Output formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrUnknownLevel is returned by ParseLevel for an unrecognized level name.
var ErrUnknownLevel = errors.New("unknown log level")

var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "lvl",
	NameKey:        "name",
	CallerKey:      "caller",
	MessageKey:     "message",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.RFC3339TimeEncoder,
	EncodeDuration: zapcore.MillisDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel, nil
	case LevelInfo, "":
		return zapcore.InfoLevel, nil
	case LevelWarn:
		return zapcore.WarnLevel, nil
	case LevelError:
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, errors.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

// New returns a sugared logger writing to w (stderr when nil). Unknown levels
// fall back to info; any format other than json is rendered as console.
func New(level, format string, w io.Writer) *zap.SugaredLogger {
	if w == nil {
		w = os.Stderr
	}
	lvl, _ := ParseLevel(level)

	var enc zapcore.Encoder
	if format == FormatJSON {
		enc = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		enc = zapcore.NewConsoleEncoder(encoderConfig)
	}

	return zap.New(
		zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl)),
		zap.AddCaller(),
	).Sugar()
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
