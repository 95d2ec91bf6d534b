// Package site hosts the agency's browser-facing service.
package site

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/volt-agency/site/internal/content"
	"github.com/volt-agency/site/internal/platform/timeouts"
	siteapp "github.com/volt-agency/site/internal/services/site/app"
	module "github.com/volt-agency/site/internal/services/site/module"
	"github.com/volt-agency/site/internal/services/site/modules"
	"github.com/volt-agency/site/internal/services/site/platform/httpx"
	"github.com/volt-agency/site/internal/services/site/platform/observability"
	"github.com/volt-agency/site/internal/services/site/routepath"
	sitestatic "github.com/volt-agency/site/internal/services/site/static"
)

// Config defines startup inputs for the site service.
type Config struct {
	HTTPAddr         string
	ContactURL       string
	TelegramBotToken string
	TelegramChatID   string
	TelegramBaseURL  string
	TelegramClient   *http.Client
	Content          *content.Catalog
	Logger           *zap.Logger
}

// Server hosts the site HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	catalog := cfg.Content
	if catalog == nil {
		catalog = content.Default()
	}
	deps := module.Dependencies{
		Content: catalog,
		Logger:  logger,
		Telegram: module.Telegram{
			BotToken:   cfg.TelegramBotToken,
			ChatID:     cfg.TelegramChatID,
			BaseURL:    cfg.TelegramBaseURL,
			HTTPClient: cfg.TelegramClient,
		},
		ContactURL: strings.TrimSpace(cfg.ContactURL),
	}
	h, err := siteapp.Composer{}.Compose(siteapp.ComposeInput{
		Dependencies: deps,
		Modules:      modules.DefaultModules(),
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(sitestatic.FS))))
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger),
	), nil
}

// NewServer validates config and constructs a site server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose site handler: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.httpAddr))
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown site http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve site http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
