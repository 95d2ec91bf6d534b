package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "untyped", err: fmt.Errorf("boom"), want: http.StatusInternalServerError},
		{name: "invalid input", err: E(KindInvalidInput, "bad"), want: http.StatusBadRequest},
		{name: "not found", err: E(KindNotFound, "missing"), want: http.StatusNotFound},
		{name: "unavailable", err: E(KindUnavailable, "down"), want: http.StatusServiceUnavailable},
		{name: "upstream", err: E(KindUpstream, "telegram"), want: http.StatusInternalServerError},
		{name: "misconfigured", err: E(KindMisconfigured, "env"), want: http.StatusInternalServerError},
		{name: "wrapped", err: fmt.Errorf("load post: %w", E(KindNotFound, "missing")), want: http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestErrorMessageFallsBackToKind(t *testing.T) {
	t.Parallel()

	if got := (Error{Kind: KindNotFound}).Error(); got != "not_found" {
		t.Fatalf("Error() = %q", got)
	}
	if got := E(KindInvalidInput, "bad width").Error(); got != "bad width" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestLocalizationKeyAndKind(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("wrap: %w", EK(KindNotFound, " news.not_found ", "post not found"))
	if got := LocalizationKey(err); got != "news.not_found" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if got := KindOf(err); got != KindNotFound {
		t.Fatalf("KindOf() = %q", got)
	}
	if got := LocalizationKey(fmt.Errorf("plain")); got != "" {
		t.Fatalf("LocalizationKey(untyped) = %q", got)
	}
	if got := KindOf(nil); got != KindUnknown {
		t.Fatalf("KindOf(nil) = %q", got)
	}
}
