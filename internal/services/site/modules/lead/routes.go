package lead

import (
	"net/http"

	"github.com/volt-agency/site/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.APILead, h.handleLead)
	mux.HandleFunc(routepath.APILead, h.handleMethodNotAllowed)
}
