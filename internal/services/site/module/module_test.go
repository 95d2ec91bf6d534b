package module

import (
	"testing"

	"github.com/volt-agency/site/internal/content"
	"github.com/volt-agency/site/internal/process"
)

func TestDependenciesFallbacks(t *testing.T) {
	t.Parallel()

	var deps Dependencies
	if deps.Catalog() != content.Default() {
		t.Fatalf("Catalog() did not fall back to the embedded catalog")
	}
	if deps.Log() == nil {
		t.Fatalf("Log() = nil")
	}
	if got := deps.StageConfig(); got != process.DefaultStageConfig() {
		t.Fatalf("StageConfig() = %+v, want defaults", got)
	}
	if got := deps.Viewport(); got != DefaultPreviewViewport {
		t.Fatalf("Viewport() = %+v, want %+v", got, DefaultPreviewViewport)
	}
}

func TestDependenciesKeepsConfiguredValues(t *testing.T) {
	t.Parallel()

	cfg := process.DefaultStageConfig()
	cfg.FPS = 30
	vp := process.Viewport{Width: 390, Height: 844}
	deps := Dependencies{Stage: cfg, PreviewViewport: vp}
	if got := deps.StageConfig(); got.FPS != 30 {
		t.Fatalf("StageConfig().FPS = %d, want 30", got.FPS)
	}
	if got := deps.Viewport(); got != vp {
		t.Fatalf("Viewport() = %+v, want %+v", got, vp)
	}
}
