// Package lead relays contact form submissions to the agency's Telegram chat.
package lead

import (
	"net/http"

	module "github.com/volt-agency/site/internal/services/site/module"
	"github.com/volt-agency/site/internal/services/site/routepath"
)

// Module provides the lead relay endpoint.
type Module struct{}

// New returns a lead module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "lead" }

// Mount wires the relay handler.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps), deps.Log()))
	return module.Mount{Prefix: routepath.APILead, Handler: mux}, nil
}
