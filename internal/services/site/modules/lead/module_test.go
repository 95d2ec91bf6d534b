package lead

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	module "github.com/volt-agency/site/internal/services/site/module"
	"github.com/volt-agency/site/internal/services/site/routepath"
	"github.com/volt-agency/site/internal/telegram"
)

type fakeTelegram struct {
	mu       sync.Mutex
	requests []map[string]string
	paths    []string
	status   int
	body     string
}

func newFakeTelegram(t *testing.T, status int, body string) (*fakeTelegram, *httptest.Server) {
	t.Helper()
	fake := &fakeTelegram{status: status, body: body}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var payload map[string]string
		_ = json.Unmarshal(raw, &payload)
		fake.mu.Lock()
		fake.requests = append(fake.requests, payload)
		fake.paths = append(fake.paths, r.URL.Path)
		fake.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(fake.status)
		_, _ = io.WriteString(w, fake.body)
	}))
	t.Cleanup(srv.Close)
	return fake, srv
}

func (f *fakeTelegram) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeTelegram) request(i int) (string, map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paths[i], f.requests[i]
}

func mountLead(t *testing.T, deps module.Dependencies) http.Handler {
	t.Helper()
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.APILead {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.APILead)
	}
	return mount.Handler
}

func postLead(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, routepath.APILead, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return payload
}

func TestLeadRelaysFormattedMessage(t *testing.T) {
	t.Parallel()

	fake, srv := newFakeTelegram(t, http.StatusOK, `{"ok":true,"result":{"message_id":1}}`)
	h := mountLead(t, module.Dependencies{Telegram: module.Telegram{BotToken: "T", ChatID: "C", BaseURL: srv.URL}})

	rr := postLead(h, `{"name":"Ann","telegram":"@ann","industry":"Retail","project":"Shop","source":"cta","lang":"en"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rr.Code, http.StatusOK, rr.Body.String())
	}
	if got := decodeBody(t, rr); got["ok"] != true {
		t.Fatalf("body = %v, want ok=true", got)
	}
	if fake.calls() != 1 {
		t.Fatalf("telegram calls = %d, want 1", fake.calls())
	}
	path, payload := fake.request(0)
	if path != "/botT/sendMessage" {
		t.Fatalf("path = %q", path)
	}
	want := "NEW LEAD\n\nName: Ann\nTelegram: @ann\nIndustry: Retail\nProject: Shop"
	if payload["text"] != want {
		t.Fatalf("text = %q, want %q", payload["text"], want)
	}
	if payload["chat_id"] != "C" {
		t.Fatalf("chat_id = %q, want %q", payload["chat_id"], "C")
	}
}

func TestLeadEmptyBodyUsesDashes(t *testing.T) {
	t.Parallel()

	fake, srv := newFakeTelegram(t, http.StatusOK, `{"ok":true}`)
	h := mountLead(t, module.Dependencies{Telegram: module.Telegram{BotToken: "T", ChatID: "C", BaseURL: srv.URL}})

	rr := postLead(h, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	_, payload := fake.request(0)
	want := "NEW LEAD\n\nName: -\nTelegram: -\nIndustry: -\nProject: -"
	if payload["text"] != want {
		t.Fatalf("text = %q, want %q", payload["text"], want)
	}
}

func TestLeadRejectsNonPost(t *testing.T) {
	t.Parallel()

	fake, srv := newFakeTelegram(t, http.StatusOK, `{"ok":true}`)
	h := mountLead(t, module.Dependencies{Telegram: module.Telegram{BotToken: "T", ChatID: "C", BaseURL: srv.URL}})

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, routepath.APILead, nil)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s status = %d, want %d", method, rr.Code, http.StatusMethodNotAllowed)
		}
		if got := rr.Header().Get("Allow"); got != http.MethodPost {
			t.Fatalf("Allow = %q, want %q", got, http.MethodPost)
		}
		if got := decodeBody(t, rr)["error"]; got != "Method not allowed" {
			t.Fatalf("error = %v", got)
		}
	}
	if fake.calls() != 0 {
		t.Fatalf("telegram calls = %d, want 0", fake.calls())
	}
}

func TestLeadMissingSecrets(t *testing.T) {
	t.Parallel()

	for name, tg := range map[string]module.Telegram{
		"no token":   {ChatID: "C"},
		"no chat id": {BotToken: "T"},
		"blank":      {BotToken: "  ", ChatID: " "},
	} {
		h := mountLead(t, module.Dependencies{Telegram: tg})
		rr := postLead(h, `{"name":"Ann"}`)
		if rr.Code != http.StatusInternalServerError {
			t.Fatalf("%s: status = %d, want %d", name, rr.Code, http.StatusInternalServerError)
		}
		if got := decodeBody(t, rr)["error"]; got != "Missing env TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID" {
			t.Fatalf("%s: error = %v", name, got)
		}
	}
}

func TestLeadTelegramErrorEchoesUpstream(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	_, srv := newFakeTelegram(t, http.StatusBadRequest, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)
	h := mountLead(t, module.Dependencies{
		Logger:   zap.New(core),
		Telegram: module.Telegram{BotToken: "T", ChatID: "C", BaseURL: srv.URL},
	})

	rr := postLead(h, `{"name":"Ann"}`)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	body := decodeBody(t, rr)
	if body["error"] != "Telegram API error" {
		t.Fatalf("error = %v", body["error"])
	}
	tgData, ok := body["tgData"].(map[string]any)
	if !ok {
		t.Fatalf("tgData = %T, want object", body["tgData"])
	}
	if tgData["ok"] != false || tgData["description"] != "Bad Request: chat not found" {
		t.Fatalf("tgData = %v", tgData)
	}
	if logs.FilterMessage("telegram error").Len() != 1 {
		t.Fatalf("expected one telegram error log, got %v", logs.All())
	}
}

func TestLeadTransportFailure(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()
	h := mountLead(t, module.Dependencies{
		Logger:   zap.New(core),
		Telegram: module.Telegram{BotToken: "secret-token", ChatID: "C", BaseURL: baseURL},
	})

	rr := postLead(h, `{"name":"Ann"}`)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if got := decodeBody(t, rr)["error"]; got != "Internal error" {
		t.Fatalf("error = %v", got)
	}
	entries := logs.FilterMessage("relay lead").All()
	if len(entries) != 1 {
		t.Fatalf("relay error logs = %d, want 1", len(entries))
	}
	if strings.Contains(entries[0].ContextMap()["error"].(string), "secret-token") {
		t.Fatalf("logged error leaks the bot token")
	}
}

func TestLeadMalformedBody(t *testing.T) {
	t.Parallel()

	fake, srv := newFakeTelegram(t, http.StatusOK, `{"ok":true}`)
	h := mountLead(t, module.Dependencies{Telegram: module.Telegram{BotToken: "T", ChatID: "C", BaseURL: srv.URL}})

	for _, body := range []string{`{"name":`, `[1,2]`, `{"name":5}`} {
		rr := postLead(h, body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d, want %d", body, rr.Code, http.StatusBadRequest)
		}
		if got := decodeBody(t, rr)["error"]; got != "Invalid request body" {
			t.Fatalf("body %q: error = %v", body, got)
		}
	}
	if fake.calls() != 0 {
		t.Fatalf("telegram calls = %d, want 0", fake.calls())
	}
}

type stubSender struct {
	resp telegram.Response
	err  error
	text string
}

func (s *stubSender) SendMessage(ctx context.Context, _ string, text string) (telegram.Response, error) {
	s.text = text
	if _, ok := ctx.Deadline(); !ok {
		return telegram.Response{}, errors.New("relay context has no deadline")
	}
	return s.resp, s.err
}

func TestServiceRelayBoundsUpstreamCall(t *testing.T) {
	t.Parallel()

	sender := &stubSender{resp: telegram.Response{OK: true}}
	svc := service{sender: sender, chatID: "C"}
	if _, err := svc.relay(context.Background(), telegram.Lead{Name: "Ann"}); err != nil {
		t.Fatalf("relay() error = %v", err)
	}
	if !strings.HasPrefix(sender.text, "NEW LEAD\n\nName: Ann\n") {
		t.Fatalf("text = %q", sender.text)
	}
}

func TestServiceRelayUnconfigured(t *testing.T) {
	t.Parallel()

	_, err := service{}.relay(context.Background(), telegram.Lead{})
	if err == nil || err.Error() != missingCredentialsMessage {
		t.Fatalf("relay() error = %v, want %q", err, missingCredentialsMessage)
	}
}
