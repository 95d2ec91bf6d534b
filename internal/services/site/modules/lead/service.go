package lead

import (
	"context"
	"errors"
	"strings"

	"github.com/volt-agency/site/internal/platform/timeouts"
	module "github.com/volt-agency/site/internal/services/site/module"
	apperrors "github.com/volt-agency/site/internal/services/site/platform/errors"
	"github.com/volt-agency/site/internal/telegram"
)

const (
	missingCredentialsMessage = "Missing env TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID"
	upstreamErrorMessage      = "Telegram API error"
	internalErrorMessage      = "Internal error"
	invalidBodyMessage        = "Invalid request body"
	methodNotAllowedMessage   = "Method not allowed"
)

type service struct {
	sender telegram.Sender
	chatID string
}

func newService(deps module.Dependencies) service {
	token := strings.TrimSpace(deps.Telegram.BotToken)
	chatID := strings.TrimSpace(deps.Telegram.ChatID)
	if token == "" || chatID == "" {
		return service{}
	}
	return service{
		sender: telegram.NewClient(deps.Telegram.BaseURL, token, deps.Telegram.HTTPClient),
		chatID: chatID,
	}
}

// relayResult carries the upstream envelope when Telegram rejected the
// message so the handler can echo it.
type relayResult struct {
	upstream *telegram.Response
}

func (s service) configured() bool {
	return s.sender != nil && s.chatID != ""
}

// relay sends l once. It never retries.
func (s service) relay(ctx context.Context, l telegram.Lead) (relayResult, error) {
	if !s.configured() {
		return relayResult{}, apperrors.E(apperrors.KindMisconfigured, missingCredentialsMessage)
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.RelayRequest)
	defer cancel()

	_, err := s.sender.SendMessage(ctx, s.chatID, telegram.FormatLead(l))
	if err == nil {
		return relayResult{}, nil
	}
	var apiErr *telegram.APIError
	if errors.As(err, &apiErr) {
		resp := apiErr.Response
		return relayResult{upstream: &resp}, errors.Join(apperrors.E(apperrors.KindUpstream, upstreamErrorMessage), err)
	}
	if errors.Is(err, telegram.ErrMissingCredentials) {
		return relayResult{}, apperrors.E(apperrors.KindMisconfigured, missingCredentialsMessage)
	}
	return relayResult{}, errors.Join(apperrors.E(apperrors.KindUnknown, internalErrorMessage), err)
}
