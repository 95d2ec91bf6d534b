package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"

	"github.com/volt-agency/site/internal/services/site/routepath"
)

const (
	errorTitleNotFoundKey  = "core.error.not_found_title"
	errorBodyNotFoundKey   = "core.error.not_found_body"
	errorTitleServerErrKey = "core.error.server_title"
	errorBodyServerErrKey  = "core.error.server_body"
	errorBackHomeKey       = "core.error.back_home"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorTitleNotFoundKey)
	}
	return T(loc, errorTitleServerErrKey)
}

// ErrorState renders the body of an error page.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		status := normalizeErrorStatus(statusCode)
		body := T(loc, errorBodyServerErrKey)
		if status == http.StatusNotFound {
			body = T(loc, errorBodyNotFoundKey)
		}
		h.raw(`<section class="error-state">`)
		h.element("p", itoa(status), "class", "error-code")
		h.element("h1", ErrorPageTitle(status, loc))
		h.element("p", body)
		h.element("a", T(loc, errorBackHomeKey), "class", "btn btn-primary", "href", routepath.Root)
		h.raw("</section>")
	})
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
