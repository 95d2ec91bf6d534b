// Package cmd holds the startup plumbing shared by the site commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/volt-agency/site/internal/platform/config"
	"github.com/volt-agency/site/internal/platform/otel"
)

const defaultTelemetryShutdown = 5 * time.Second

// Command names, also used as logger and tracer service names.
const (
	ServiceSite         = "site"
	ServiceStackPreview = "stackpreview"
)

// RunOptions tunes RunWithTelemetryAndOptions.
type RunOptions struct {
	// Telemetry replaces the VOLT_OTEL_* environment when set.
	Telemetry *otel.Config
	// ShutdownTimeout bounds the final span flush.
	ShutdownTimeout time.Duration
	// Logger receives telemetry status lines. Defaults to a no-op logger.
	Logger *zap.Logger
}

// ParseConfigFromArgs fills cfg from the environment, applies the flags in
// args on top and validates the result when cfg implements config.Validator.
//
// Flags must be registered on fs with empty defaults so that unset flags
// keep the environment value.
func ParseConfigFromArgs[T any](cfg *T, fs *flag.FlagSet, args []string) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if fs == nil {
		return errors.New("flag set is required")
	}
	if err := config.ParseEnv(cfg); err != nil {
		return err
	}
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if v, ok := any(cfg).(config.Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("validate config: %w", err)
		}
	}
	return nil
}

// RunWithTelemetry runs fn with tracing configured from the environment.
func RunWithTelemetry(ctx context.Context, service string, fn func(context.Context) error) error {
	return RunWithTelemetryAndOptions(ctx, service, RunOptions{}, fn)
}

// RunWithTelemetryAndOptions installs tracing for service, runs fn and
// flushes spans once fn returns. A failed flush is logged, not returned.
func RunWithTelemetryAndOptions(ctx context.Context, service string, opts RunOptions, fn func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if fn == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		shutdown otel.Shutdown
		err      error
	)
	if opts.Telemetry != nil {
		shutdown, err = otel.SetupWithConfig(ctx, service, *opts.Telemetry)
		if err == nil && opts.Telemetry.Active() {
			logger.Info("tracing enabled", zap.String("endpoint", opts.Telemetry.Endpoint))
		}
	} else {
		shutdown, err = otel.Setup(ctx, service)
	}
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}

	defer func() {
		timeout := opts.ShutdownTimeout
		if timeout <= 0 {
			timeout = defaultTelemetryShutdown
		}
		flushCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			logger.Warn("telemetry shutdown failed", zap.String("service", service), zap.Error(err))
		}
	}()
	return fn(ctx)
}
