package otel

import (
	"context"
	"os"
	"testing"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	unsetEnv(t, EnvEndpoint, EnvEnabled, EnvSampleRatio)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !cfg.Enabled || cfg.SampleRatio != 1 {
		t.Fatalf("LoadConfig() = %+v, want enabled with ratio 1", cfg)
	}
	if cfg.Active() {
		t.Fatal("Active() = true without an endpoint")
	}
}

func TestLoadConfigRejectsBadRatio(t *testing.T) {
	t.Setenv(EnvSampleRatio, "1.5")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected ratio error")
	}
}

func TestConfigActive(t *testing.T) {
	tests := []struct {
		cfg  Config
		want bool
	}{
		{Config{Endpoint: "http://collector:4318", Enabled: true}, true},
		{Config{Endpoint: "http://collector:4318", Enabled: false}, false},
		{Config{Endpoint: "  ", Enabled: true}, false},
	}
	for _, tc := range tests {
		if got := tc.cfg.Active(); got != tc.want {
			t.Fatalf("Active(%+v) = %v, want %v", tc.cfg, got, tc.want)
		}
	}
}

func TestSetupIsNoopWhenDisabled(t *testing.T) {
	t.Setenv(EnvEndpoint, "http://localhost:4318")
	t.Setenv(EnvEnabled, "false")

	shutdown, err := Setup(context.Background(), "site")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error = %v", err)
	}
}

func TestSetupWithConfigCreatesProvider(t *testing.T) {
	// Non-routable address; nothing is exported before shutdown.
	shutdown, err := SetupWithConfig(context.Background(), "site", Config{
		Endpoint:    "http://192.0.2.1:4318",
		Enabled:     true,
		SampleRatio: 0.5,
	})
	if err != nil {
		t.Fatalf("SetupWithConfig() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error = %v", err)
	}
}
