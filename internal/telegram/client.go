// Package telegram is a minimal client for the Telegram Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// DefaultBaseURL is the public Bot API endpoint.
const DefaultBaseURL = "https://api.telegram.org"

// maxResponseBytes bounds how much of an upstream response is read.
const maxResponseBytes = 1 << 20

var tracer = otel.Tracer("github.com/volt-agency/site/internal/telegram")

// ErrMissingCredentials is returned when the bot token or chat id is empty.
var ErrMissingCredentials = errors.New("telegram: missing bot token or chat id")

// Response is the envelope every Bot API method returns.
type Response struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
	ErrorCode   int    `json:"error_code,omitempty"`

	// Raw is the body exactly as received.
	Raw json.RawMessage `json:"-"`
}

// APIError reports a response with ok set to false.
type APIError struct {
	Response Response
}

func (e *APIError) Error() string {
	if e.Response.Description == "" {
		return fmt.Sprintf("telegram: api error %d", e.Response.ErrorCode)
	}
	return fmt.Sprintf("telegram: api error %d: %s", e.Response.ErrorCode, e.Response.Description)
}

// Sender delivers a text message to a chat.
type Sender interface {
	SendMessage(ctx context.Context, chatID, text string) (Response, error)
}

// Client calls the Bot API with a single bot token.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient returns a client for token. An empty baseURL selects
// DefaultBaseURL and a nil client selects http.DefaultClient.
func NewClient(baseURL, token string, client *http.Client) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  client,
	}
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// SendMessage posts text to chatID.
//
// The decoded envelope is returned whenever the upstream answered with JSON.
// An envelope with ok=false is reported as *APIError.
func (c *Client) SendMessage(ctx context.Context, chatID, text string) (Response, error) {
	ctx, span := tracer.Start(ctx, "telegram.sendMessage")
	defer span.End()

	if c.token == "" || chatID == "" {
		span.SetStatus(codes.Error, ErrMissingCredentials.Error())
		return Response{}, ErrMissingCredentials
	}

	body, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return Response{}, fmt.Errorf("encode sendMessage request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bot"+c.token+"/sendMessage", bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("build sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return Response{}, fmt.Errorf("sendMessage request: %w", redact(err, c.token))
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")
		return Response{}, fmt.Errorf("read sendMessage response: %w", err)
	}

	var result Response
	if err := json.Unmarshal(raw, &result); err != nil {
		span.SetStatus(codes.Error, "decode failed")
		return Response{}, fmt.Errorf("decode sendMessage response (%s): %w", resp.Status, err)
	}
	result.Raw = json.RawMessage(raw)

	if !result.OK {
		apiErr := &APIError{Response: result}
		span.SetStatus(codes.Error, apiErr.Error())
		return result, apiErr
	}
	return result, nil
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

// redact strips the bot token from transport errors, which embed the URL.
func redact(err error, token string) error {
	if token == "" || !strings.Contains(err.Error(), token) {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(err.Error(), token, "<redacted>"), err: err}
}
