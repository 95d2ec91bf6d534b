// Package i18n resolves the request language and its message printer.
package i18n

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	platformi18n "github.com/volt-agency/site/internal/platform/i18n"
	_ "github.com/volt-agency/site/internal/platform/i18n/catalog"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "volt_lang"
)

// Localizer exposes translated formatting used by templates and handlers.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Code   platformi18n.Code
	Label  string
	URL    string
	Active bool
}

// ResolveCode determines the language for the request: query parameter,
// then cookie, then Accept-Language. The bool reports whether the query
// parameter selected it and should be persisted.
func ResolveCode(r *http.Request) (platformi18n.Code, bool) {
	if r == nil {
		return platformi18n.Default(), false
	}
	if r.URL != nil {
		if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
			if code, ok := platformi18n.ParseCode(value); ok {
				return code, true
			}
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if code, ok := platformi18n.ParseCode(cookie.Value); ok {
			return code, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return platformi18n.MatchTags(tags), false
		}
	}
	return platformi18n.Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, code platformi18n.Code) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    string(code),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// EnsureLanguageCookie syncs the language cookie to code.
func EnsureLanguageCookie(w http.ResponseWriter, r *http.Request, code platformi18n.Code) {
	if w == nil {
		return
	}
	if r != nil {
		if cookie, err := r.Cookie(LangCookieName); err == nil && strings.TrimSpace(cookie.Value) == string(code) {
			return
		}
	}
	SetLanguageCookie(w, code)
}

// Printer returns a message printer for code.
func Printer(code platformi18n.Code) *message.Printer {
	return message.NewPrinter(code.Tag())
}

// ResolveLocalizer resolves the request language, persists an explicit
// choice and returns the matching printer.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (*message.Printer, platformi18n.Code) {
	code, persist := ResolveCode(r)
	if persist {
		EnsureLanguageCookie(w, r, code)
	}
	return Printer(code), code
}

// LanguageURL returns path with the language parameter set to code.
func LanguageURL(path string, rawQuery string, code platformi18n.Code) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, string(code))
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// LanguageOptions returns the switcher entries for the request path.
func LanguageOptions(active platformi18n.Code, path string, rawQuery string) []LanguageOption {
	codes := platformi18n.Supported()
	options := make([]LanguageOption, 0, len(codes))
	for _, code := range codes {
		options = append(options, LanguageOption{
			Code:   code,
			Label:  code.Label(),
			URL:    LanguageURL(path, rawQuery, code),
			Active: code == active,
		})
	}
	return options
}
