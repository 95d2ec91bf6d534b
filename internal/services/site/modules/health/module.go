// Package health serves the liveness probe.
package health

import (
	"net/http"

	module "github.com/volt-agency/site/internal/services/site/module"
	"github.com/volt-agency/site/internal/services/site/routepath"
)

// Module provides the health route.
type Module struct{}

// New returns a health module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "health" }

// Mount wires the health handler.
func (Module) Mount(module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, handleHealth)
	return module.Mount{Prefix: routepath.Health, Handler: mux}, nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
