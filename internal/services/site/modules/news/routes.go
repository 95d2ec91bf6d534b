package news

import (
	"net/http"

	"github.com/volt-agency/site/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.News, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.NewsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.NewsPostPattern, h.handlePost)
	mux.HandleFunc(routepath.NewsPrefix, h.handleNotFound)
}
