// Package logging builds the zap loggers used by service commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Levels accepted by New.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelNone  = "none"
)

// New returns a console logger named after service writing to stderr.
func New(service, level string) (*zap.Logger, error) {
	return NewWithWriter(os.Stderr, service, level)
}

// NewWithWriter returns a console logger writing to w.
func NewWithWriter(w io.Writer, service, level string) (*zap.Logger, error) {
	enabler, ok, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	if !ok {
		return zap.NewNop(), nil
	}
	if w == nil {
		w = os.Stderr
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), enabler)

	logger := zap.New(core)
	if service = strings.TrimSpace(service); service != "" {
		logger = logger.Named(service)
	}
	return logger, nil
}

func parseLevel(level string) (zapcore.Level, bool, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", LevelInfo, "normal":
		return zapcore.InfoLevel, true, nil
	case LevelDebug:
		return zapcore.DebugLevel, true, nil
	case LevelNone:
		return zapcore.InfoLevel, false, nil
	default:
		return zapcore.InfoLevel, false, fmt.Errorf("unknown log level %q", level)
	}
}
