package config

import (
	"strings"
	"testing"
)

func TestLoadHostConfigDefaults(t *testing.T) {
	cfg, err := LoadHostConfig()
	if err != nil {
		t.Fatalf("LoadHostConfig: %v", err)
	}
	if cfg.ScreenWidth != 1280 || cfg.ScreenHeight != 720 {
		t.Fatalf("size: got %dx%d want 1280x720", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.LogLevel != "info" || cfg.Seed != 0 || cfg.PprofAddr != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadHostConfigOverrides(t *testing.T) {
	t.Setenv("TD_SCREEN_WIDTH", "1024")
	t.Setenv("TD_SCREEN_HEIGHT", "768")
	t.Setenv("TD_SEED", "42")
	t.Setenv("TD_LOG_LEVEL", "debug")
	t.Setenv("TD_PPROF_ADDR", "localhost:6060")

	cfg, err := LoadHostConfig()
	if err != nil {
		t.Fatalf("LoadHostConfig: %v", err)
	}
	want := HostConfig{
		ScreenWidth:  1024,
		ScreenHeight: 768,
		WindowTitle:  "Thermal TD",
		Seed:         42,
		LogLevel:     "debug",
		PprofAddr:    "localhost:6060",
	}
	if cfg != want {
		t.Fatalf("got %+v want %+v", cfg, want)
	}
}

func TestLoadHostConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"not a number", "TD_SCREEN_WIDTH", "wide", "parse env:"},
		{"bad seed", "TD_SEED", "x", "parse env:"},
		{"zero height", "TD_SCREEN_HEIGHT", "0", "invalid screen size"},
		{"negative width", "TD_SCREEN_WIDTH", "-5", "invalid screen size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadHostConfig()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}
