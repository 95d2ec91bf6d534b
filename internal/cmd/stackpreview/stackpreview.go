// Package stackpreview runs the process timeline in a terminal so the card
// stack can be tuned without a browser.
package stackpreview

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/volt-agency/site/internal/content"
	entrypoint "github.com/volt-agency/site/internal/platform/cmd"
	"github.com/volt-agency/site/internal/platform/i18n"
	"github.com/volt-agency/site/internal/platform/logging"
	"github.com/volt-agency/site/internal/process"
)

// Config holds preview settings. Geometry is in CSS pixels of the simulated
// browser window.
type Config struct {
	Lang     string
	Width    float64
	Height   float64
	Top      float64
	FPS      int
	LogLevel string
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var err error
	if _, ok := i18n.ParseCode(c.Lang); !ok {
		err = multierr.Append(err, fmt.Errorf("unsupported language %q", c.Lang))
	}
	if !positive(c.Width) {
		err = multierr.Append(err, fmt.Errorf("width must be positive, got %v", c.Width))
	}
	if !positive(c.Height) {
		err = multierr.Append(err, fmt.Errorf("height must be positive, got %v", c.Height))
	}
	if math.IsNaN(c.Top) || math.IsInf(c.Top, 0) || c.Top < 0 {
		err = multierr.Append(err, fmt.Errorf("top must be a non-negative number, got %v", c.Top))
	}
	if c.FPS < 1 || c.FPS > 240 {
		err = multierr.Append(err, fmt.Errorf("fps must be between 1 and 240, got %d", c.FPS))
	}
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", logging.LevelDebug, logging.LevelInfo, logging.LevelNone:
	default:
		err = multierr.Append(err, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	return err
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// NewCommand returns the stackpreview command line.
func NewCommand() *cli.Command {
	return newCommand(Run)
}

func newCommand(run func(context.Context, Config) error) *cli.Command {
	return &cli.Command{
		Name:            entrypoint.ServiceStackPreview,
		Usage:           "preview the process card stack in the terminal",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "lang", Aliases: []string{"l"}, Value: i18n.Default().String(), Usage: "step copy `LANGUAGE` (en, ru, ua)"},
			&cli.FloatFlag{Name: "width", Value: 1280, Usage: "simulated window width in `PIXELS`"},
			&cli.FloatFlag{Name: "height", Value: 800, Usage: "simulated window height in `PIXELS`"},
			&cli.FloatFlag{Name: "top", Value: 0, Usage: "document offset of the process section in `PIXELS`"},
			&cli.IntFlag{Name: "fps", Value: process.DefaultFPS, Usage: "animation frame rate"},
			&cli.StringFlag{Name: "log-level", Value: logging.LevelNone, Usage: "log `LEVEL`: debug, info or none"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := Config{
				Lang:     cmd.String("lang"),
				Width:    cmd.Float("width"),
				Height:   cmd.Float("height"),
				Top:      cmd.Float("top"),
				FPS:      cmd.Int("fps"),
				LogLevel: cmd.String("log-level"),
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(ctx, cfg)
		},
	}
}

// Run shows the preview until the user quits or ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(entrypoint.ServiceStackPreview, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	model := NewModel(content.Default(), cfg)
	defer model.Close()

	logger.Debug("preview started",
		zap.String("lang", model.Language().String()),
		zap.Float64("width", cfg.Width),
		zap.Float64("height", cfg.Height),
		zap.Int("fps", cfg.FPS))

	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run preview: %w", err)
	}
	if m, ok := final.(Model); ok {
		logger.Debug("preview closed", zap.Float64("progress", m.Progress()))
	}
	return nil
}
