// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	platformi18n "github.com/volt-agency/site/internal/platform/i18n"
	module "github.com/volt-agency/site/internal/services/site/module"
	"github.com/volt-agency/site/internal/services/site/platform/httpx"
	sitei18n "github.com/volt-agency/site/internal/services/site/platform/i18n"
	"github.com/volt-agency/site/internal/services/site/templates"
)

// ModulePage describes a full-page module response.
type ModulePage struct {
	Title       string
	Description string
	StatusCode  int
	Fragment    templ.Component
}

// Request is the resolved language state of a page request.
type Request struct {
	Loc  templates.Localizer
	Lang platformi18n.Code
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// Resolve picks the request language and persists an explicit choice.
// Handlers call it once and pass the result to WriteModulePage.
func Resolve(w http.ResponseWriter, r *http.Request) Request {
	loc, lang := sitei18n.ResolveLocalizer(w, r)
	return Request{Loc: loc, Lang: lang}
}

// WriteModulePage writes page inside the site layout.
func WriteModulePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, req Request, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	if req.Lang == "" {
		req = Resolve(w, r)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	return templates.Layout(PageContext(r, deps, req, page)).Render(templ.WithChildren(httpx.RequestContext(r), fragment), w)
}

// PageContext builds the layout chrome for a request.
func PageContext(r *http.Request, deps module.Dependencies, req Request, page ModulePage) templates.PageContext {
	path, rawQuery := "/", ""
	if r != nil && r.URL != nil {
		path, rawQuery = r.URL.Path, r.URL.RawQuery
	}
	return templates.PageContext{
		Title:       page.Title,
		Description: page.Description,
		Lang:        req.Lang,
		Loc:         req.Loc,
		Languages:   sitei18n.LanguageOptions(req.Lang, path, rawQuery),
		ContactURL:  deps.ContactURL,
		Industries:  deps.Catalog().Page(req.Lang).Industries,
	}
}
