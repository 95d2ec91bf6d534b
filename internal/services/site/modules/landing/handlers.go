package landing

import (
	"net/http"

	"go.uber.org/zap"

	module "github.com/volt-agency/site/internal/services/site/module"
	"github.com/volt-agency/site/internal/services/site/platform/httpx"
	"github.com/volt-agency/site/internal/services/site/platform/pagerender"
	"github.com/volt-agency/site/internal/services/site/platform/weberror"
	"github.com/volt-agency/site/internal/services/site/templates"
)

type handlers struct {
	svc  service
	deps module.Dependencies
}

func newHandlers(svc service, deps module.Dependencies) handlers {
	return handlers{svc: svc, deps: deps}
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	req := pagerender.Resolve(w, r)
	view := h.svc.landing(req.Lang)
	page := pagerender.ModulePage{
		Title:       templates.T(req.Loc, "landing.title"),
		Description: templates.T(req.Loc, "landing.description"),
		Fragment:    templates.Landing(view, req.Loc),
	}
	if err := pagerender.WriteModulePage(w, r, h.deps, req, page); err != nil {
		h.deps.Log().Error("render landing", zap.String("request_id", httpx.RequestIDFrom(r)), zap.Error(err))
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}
