package processapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	module "github.com/volt-agency/site/internal/services/site/module"
	"github.com/volt-agency/site/internal/services/site/routepath"
)

func getTimeline(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := New().Mount(module.Dependencies{})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func TestTimelineForWideViewport(t *testing.T) {
	t.Parallel()

	rr := getTimeline(t, routepath.APIProcess+"?lang=en&width=1280&height=800&top=500")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (%s)", rr.Code, http.StatusOK, rr.Body.String())
	}
	var got Timeline
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Lang != "en" {
		t.Fatalf("lang = %q, want en", got.Lang)
	}
	if len(got.Steps) != 5 {
		t.Fatalf("steps = %d, want 5", len(got.Steps))
	}
	if got.Layout.Class != "wide" || got.Layout.SectionHeight != 4680 || got.Layout.RangeStart != 500 || got.Layout.RangeEnd != 4380 {
		t.Fatalf("layout = %+v", got.Layout)
	}
	if got.Layout.CardSide != 576 {
		t.Fatalf("card side = %v, want 576", got.Layout.CardSide)
	}
	if got.Tuning.EnterFraction != 0.68 || got.Spring.FPS != 60 {
		t.Fatalf("tuning = %+v spring = %+v", got.Tuning, got.Spring)
	}
	for i, step := range got.Steps {
		if step.Z != 10+i {
			t.Fatalf("step %d z = %d", i, step.Z)
		}
		if i > 0 && step.Start != got.Steps[i-1].End {
			t.Fatalf("step %d start %v does not continue %v", i, step.Start, got.Steps[i-1].End)
		}
		if step.SettledY != float64(i)*24 {
			t.Fatalf("step %d settledY = %v", i, step.SettledY)
		}
	}
	if got.Steps[0].Start != 0 || got.Steps[4].End != 1 {
		t.Fatalf("windows do not span [0,1]")
	}
}

func TestTimelineDefaultsToPreviewViewport(t *testing.T) {
	t.Parallel()

	rr := getTimeline(t, routepath.APIProcess)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var got Timeline
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Layout.ViewportHeight != module.DefaultPreviewViewport.Height {
		t.Fatalf("viewport height = %v", got.Layout.ViewportHeight)
	}
}

func TestTimelineNarrowRussian(t *testing.T) {
	t.Parallel()

	rr := getTimeline(t, routepath.APIProcess+"?lang=ru&width=390&height=844")
	var got Timeline
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Lang != "ru" || got.Layout.Class != "narrow" {
		t.Fatalf("lang = %q class = %q", got.Lang, got.Layout.Class)
	}
	if got.Layout.StageLift != 180 {
		t.Fatalf("stage lift = %v, want 180", got.Layout.StageLift)
	}
}

func TestTimelineRejectsBadNumbers(t *testing.T) {
	t.Parallel()

	for _, query := range []string{"?width=wide", "?height=NaN", "?top=Inf", "?width=-5"} {
		rr := getTimeline(t, routepath.APIProcess+query)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want %d", query, rr.Code, http.StatusBadRequest)
		}
		var body map[string]string
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil || body["error"] == "" {
			t.Fatalf("%s: body = %q", query, rr.Body.String())
		}
	}
}

func TestTimelineRejectsPost(t *testing.T) {
	t.Parallel()

	mount, _ := New().Mount(module.Dependencies{})
	req := httptest.NewRequest(http.MethodPost, routepath.APIProcess, nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != http.MethodGet {
		t.Fatalf("Allow = %q", got)
	}
}
