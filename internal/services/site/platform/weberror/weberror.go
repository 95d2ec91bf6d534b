// Package weberror renders shared error responses for site modules.
package weberror

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	module "github.com/volt-agency/site/internal/services/site/module"
	apperrors "github.com/volt-agency/site/internal/services/site/platform/errors"
	"github.com/volt-agency/site/internal/services/site/platform/pagerender"
	"github.com/volt-agency/site/internal/services/site/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc templates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	req := pagerender.Resolve(w, r)
	page := pagerender.ModulePage{
		Title:      templates.ErrorPageTitle(statusCode, req.Loc) + " — " + templates.T(req.Loc, "core.brand"),
		StatusCode: statusCode,
		Fragment:   templates.ErrorState(statusCode, req.Loc),
	}
	if err := pagerender.WriteModulePage(w, r, deps, req, page); err != nil {
		deps.Log().Error("render error page", zap.Int("status", statusCode), zap.Error(err))
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, deps)
		return
	}
	req := pagerender.Resolve(w, r)
	http.Error(w, PublicMessage(req.Loc, err), statusCode)
}
