// Package landing serves the agency landing page and the site-wide 404.
package landing

import (
	"net/http"

	module "github.com/volt-agency/site/internal/services/site/module"
	"github.com/volt-agency/site/internal/services/site/routepath"
)

// Module provides the landing page.
type Module struct{}

// New returns a landing module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "landing" }

// Mount wires landing route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps), deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
