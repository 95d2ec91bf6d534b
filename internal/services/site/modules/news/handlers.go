package news

import (
	"net/http"

	"go.uber.org/zap"

	module "github.com/volt-agency/site/internal/services/site/module"
	apperrors "github.com/volt-agency/site/internal/services/site/platform/errors"
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

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	req := pagerender.Resolve(w, r)
	h.write(w, r, req, pagerender.ModulePage{
		Title:    templates.T(req.Loc, "news.page_title"),
		Fragment: templates.NewsList(h.svc.posts(), req.Loc),
	})
}

func (h handlers) handlePost(w http.ResponseWriter, r *http.Request) {
	req := pagerender.Resolve(w, r)
	post, err := h.svc.post(r.PathValue("postID"))
	if err != nil {
		if apperrors.HTTPStatus(err) != http.StatusNotFound {
			weberror.WriteModuleError(w, r, err, h.deps)
			return
		}
		h.write(w, r, req, pagerender.ModulePage{
			Title:      weberror.PublicMessage(req.Loc, err),
			StatusCode: http.StatusNotFound,
			Fragment:   templates.NewsNotFound(req.Loc),
		})
		return
	}
	h.write(w, r, req, pagerender.ModulePage{
		Title:       templates.T(req.Loc, "news.article_title", post.Title),
		Description: post.Excerpt,
		Fragment:    templates.NewsArticle(post, req.Loc),
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

func (h handlers) write(w http.ResponseWriter, r *http.Request, req pagerender.Request, page pagerender.ModulePage) {
	if err := pagerender.WriteModulePage(w, r, h.deps, req, page); err != nil {
		h.deps.Log().Error("render news page", zap.String("request_id", httpx.RequestIDFrom(r)), zap.Error(err))
	}
}
