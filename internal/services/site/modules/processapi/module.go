// Package processapi serves the process timeline geometry to the browser
// script so it animates cards with the same mapping the server renders.
package processapi

import (
	"net/http"

	module "github.com/volt-agency/site/internal/services/site/module"
	"github.com/volt-agency/site/internal/services/site/routepath"
)

// Module provides the timeline endpoint.
type Module struct{}

// New returns a process API module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "processapi" }

// Mount wires the timeline handler.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps)))
	return module.Mount{Prefix: routepath.APIProcess, Handler: mux}, nil
}
