package processapi

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	apperrors "github.com/volt-agency/site/internal/services/site/platform/errors"
	"github.com/volt-agency/site/internal/services/site/platform/httpx"
	sitei18n "github.com/volt-agency/site/internal/services/site/platform/i18n"
)

type handlers struct {
	svc service
}

func newHandlers(svc service) handlers {
	return handlers{svc: svc}
}

func (h handlers) handleTimeline(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	_ = httpx.WriteJSON(w, http.StatusOK, h.svc.timeline(q))
}

func (h handlers) parseQuery(r *http.Request) (timelineQuery, error) {
	lang, _ := sitei18n.ResolveCode(r)
	values := r.URL.Query()
	q := timelineQuery{lang: lang, viewport: h.svc.fallback}

	width, ok, err := floatParam(values, "width")
	if err != nil {
		return timelineQuery{}, err
	}
	if ok {
		q.viewport.Width = width
	}
	height, ok, err := floatParam(values, "height")
	if err != nil {
		return timelineQuery{}, err
	}
	if ok {
		q.viewport.Height = height
	}
	top, ok, err := floatParam(values, "top")
	if err != nil {
		return timelineQuery{}, err
	}
	if ok {
		q.sectionTop = top
	}
	if q.viewport.Width <= 0 || q.viewport.Height <= 0 {
		return timelineQuery{}, apperrors.E(apperrors.KindInvalidInput, "width and height must be positive")
	}
	return q, nil
}

// floatParam parses an optional finite number.
func floatParam(values url.Values, name string) (float64, bool, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, apperrors.E(apperrors.KindInvalidInput, name+" must be a number")
	}
	return v, true, nil
}
