// Package site parses site command flags and composes the HTTP service.
package site

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	entrypoint "github.com/volt-agency/site/internal/platform/cmd"
	"github.com/volt-agency/site/internal/platform/config"
	"github.com/volt-agency/site/internal/platform/logging"
	siteservice "github.com/volt-agency/site/internal/services/site"
)

// Config holds site command configuration.
type Config struct {
	HTTPAddr         string `env:"VOLT_SITE_HTTP_ADDR"     envDefault:":8080"`
	ContactURL       string `env:"VOLT_SITE_CONTACT_URL"   envDefault:"https://t.me/traffic_angelss"`
	LogLevel         string `env:"VOLT_LOG_LEVEL"          envDefault:"info"`
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `env:"TELEGRAM_CHAT_ID"`
	TelegramBaseURL  string `env:"TELEGRAM_API_BASE_URL"`
}

// Validate rejects values the service cannot start with. Missing Telegram
// secrets are allowed; the relay reports them per request.
func (c *Config) Validate() error {
	err := config.Required(map[string]string{
		"VOLT_SITE_HTTP_ADDR":   c.HTTPAddr,
		"VOLT_SITE_CONTACT_URL": c.ContactURL,
	})
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", logging.LevelDebug, logging.LevelInfo, logging.LevelNone:
	default:
		err = multierr.Append(err, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	return err
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.HTTPAddr, "http-addr", "", "site HTTP listen address (env VOLT_SITE_HTTP_ADDR)")
	fs.StringVar(&cfg.ContactURL, "contact-url", "", "Telegram contact link shown in the header (env VOLT_SITE_CONTACT_URL)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "log level: debug, info or none (env VOLT_LOG_LEVEL)")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run builds the site server and serves until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(entrypoint.ServiceSite, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceSite, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, err := siteservice.NewServer(ctx, siteservice.Config{
			HTTPAddr:         cfg.HTTPAddr,
			ContactURL:       cfg.ContactURL,
			TelegramBotToken: cfg.TelegramBotToken,
			TelegramChatID:   cfg.TelegramChatID,
			TelegramBaseURL:  cfg.TelegramBaseURL,
			Logger:           logger,
		})
		if err != nil {
			return fmt.Errorf("init site server: %w", err)
		}
		defer server.Close()

		if cfg.TelegramBotToken == "" || cfg.TelegramChatID == "" {
			logger.Warn("lead relay disabled until TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID are set")
		}
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve site: %w", err)
		}
		return nil
	})
}

