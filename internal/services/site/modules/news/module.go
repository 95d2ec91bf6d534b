// Package news serves the agency news feed and articles.
package news

import (
	"net/http"

	module "github.com/volt-agency/site/internal/services/site/module"
	"github.com/volt-agency/site/internal/services/site/routepath"
)

// Module provides news routes.
type Module struct{}

// New returns a news module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "news" }

// Mount wires news route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps), deps))
	return module.Mount{Prefix: routepath.NewsPrefix, Handler: mux}, nil
}
