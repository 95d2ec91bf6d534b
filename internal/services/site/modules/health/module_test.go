package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	module "github.com/volt-agency/site/internal/services/site/module"
	"github.com/volt-agency/site/internal/services/site/routepath"
)

func TestMountServesHealth(t *testing.T) {
	t.Parallel()

	mount, err := New().Mount(module.Dependencies{})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, routepath.Health, nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Body.String(); got != "ok" {
		t.Fatalf("body = %q, want %q", got, "ok")
	}
}

func TestMountRejectsHealthPost(t *testing.T) {
	t.Parallel()

	mount, _ := New().Mount(module.Dependencies{})
	req := httptest.NewRequest(http.MethodPost, routepath.Health, nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestModuleIDReturnsHealth(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "health" {
		t.Fatalf("ID() = %q, want %q", got, "health")
	}
}
