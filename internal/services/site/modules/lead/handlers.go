package lead

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	apperrors "github.com/volt-agency/site/internal/services/site/platform/errors"
	"github.com/volt-agency/site/internal/services/site/platform/httpx"
	"github.com/volt-agency/site/internal/telegram"
)

const maxBodyBytes = 64 << 10

type handlers struct {
	svc    service
	logger *zap.Logger
}

func newHandlers(svc service, logger *zap.Logger) handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return handlers{svc: svc, logger: logger}
}

type upstreamErrorBody struct {
	Error  string          `json:"error"`
	TgData json.RawMessage `json:"tgData"`
}

func (h handlers) handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	_ = httpx.WriteJSONError(w, http.StatusMethodNotAllowed, methodNotAllowedMessage)
}

func (h handlers) handleLead(w http.ResponseWriter, r *http.Request) {
	if !h.svc.configured() {
		_ = httpx.WriteJSONError(w, http.StatusInternalServerError, missingCredentialsMessage)
		return
	}

	l, err := decodeLead(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.logger.Debug("reject lead body", zap.String("request_id", httpx.RequestIDFrom(r)), zap.Error(err))
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, invalidBodyMessage)
		return
	}

	result, err := h.svc.relay(httpx.RequestContext(r), l)
	if err != nil {
		h.writeRelayError(w, r, result, err)
		return
	}
	h.logger.Info("lead relayed", zap.String("request_id", httpx.RequestIDFrom(r)))
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h handlers) writeRelayError(w http.ResponseWriter, r *http.Request, result relayResult, err error) {
	requestID := zap.String("request_id", httpx.RequestIDFrom(r))
	switch apperrors.KindOf(err) {
	case apperrors.KindMisconfigured:
		_ = httpx.WriteJSONError(w, http.StatusInternalServerError, missingCredentialsMessage)
	case apperrors.KindUpstream:
		body := upstreamErrorBody{Error: upstreamErrorMessage}
		if result.upstream != nil {
			body.TgData = result.upstream.Raw
		}
		h.logger.Error("telegram error", requestID, zap.ByteString("tg_data", body.TgData), zap.Error(err))
		_ = httpx.WriteJSON(w, http.StatusInternalServerError, body)
	default:
		h.logger.Error("relay lead", requestID, zap.Error(err))
		_ = httpx.WriteJSONError(w, http.StatusInternalServerError, internalErrorMessage)
	}
}

// decodeLead reads the form payload. An empty body is an empty lead.
func decodeLead(body io.Reader) (telegram.Lead, error) {
	var l telegram.Lead
	if body == nil {
		return l, nil
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return l, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return l, nil
	}
	if err := json.Unmarshal(raw, &l); err != nil {
		return telegram.Lead{}, err
	}
	return l, nil
}

