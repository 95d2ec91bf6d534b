// Package module defines the feature contract used by site composition.
package module

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/volt-agency/site/internal/content"
	"github.com/volt-agency/site/internal/process"
)

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by site composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}

// Telegram carries the lead relay's upstream settings. Empty credentials
// are reported per request, not at startup.
type Telegram struct {
	BotToken   string
	ChatID     string
	BaseURL    string
	HTTPClient *http.Client
}

// Dependencies carries shared runtime inputs for modules.
type Dependencies struct {
	Content    *content.Catalog
	Logger     *zap.Logger
	Telegram   Telegram
	ContactURL string
	// Stage tunes the process timeline rendered by pages and served to the
	// browser script.
	Stage process.StageConfig
	// PreviewViewport is the viewport the landing page lays the process
	// section out for before the browser measures the real one.
	PreviewViewport process.Viewport
}

// DefaultPreviewViewport is the desktop viewport pages are pre-rendered for.
var DefaultPreviewViewport = process.Viewport{Width: 1280, Height: 800}

// Catalog returns the content catalog, falling back to the embedded one.
func (d Dependencies) Catalog() *content.Catalog {
	if d.Content != nil {
		return d.Content
	}
	return content.Default()
}

// Log returns the logger or a no-op logger.
func (d Dependencies) Log() *zap.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return zap.NewNop()
}

// StageConfig returns the configured timeline tuning or the defaults.
func (d Dependencies) StageConfig() process.StageConfig {
	if d.Stage == (process.StageConfig{}) {
		return process.DefaultStageConfig()
	}
	return d.Stage
}

// Viewport returns the pre-render viewport or DefaultPreviewViewport.
func (d Dependencies) Viewport() process.Viewport {
	if d.PreviewViewport.Width <= 0 || d.PreviewViewport.Height <= 0 {
		return DefaultPreviewViewport
	}
	return d.PreviewViewport
}
