package processapi

import (
	"net/http"

	"github.com/volt-agency/site/internal/services/site/platform/httpx"
	"github.com/volt-agency/site/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.APIProcess, h.handleTimeline)
	mux.HandleFunc(routepath.APIProcess, httpx.MethodNotAllowed(http.MethodGet))
}
