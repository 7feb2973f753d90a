package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Server.URL != "ws://127.0.0.1:8080/ws" {
		t.Errorf("Server.URL = %q, want default", cfg.Server.URL)
	}
	if cfg.Gesture.Resistance != 0.3 {
		t.Errorf("Gesture.Resistance = %v, want 0.3", cfg.Gesture.Resistance)
	}
	if got := cfg.UI.SheetSnapPoints; len(got) != 2 || got[0] != 0.5 || got[1] != 0.9 {
		t.Errorf("SheetSnapPoints = %v, want [0.5 0.9]", got)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	yaml := `
server:
  url: wss://studio.example.com/ws
  token: secret
gesture:
  velocity_threshold: 0.25
ui:
  fps: 30
`
	if err := os.WriteFile(cfgPath, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.URL != "wss://studio.example.com/ws" {
		t.Errorf("Server.URL = %q", cfg.Server.URL)
	}
	if cfg.Gesture.VelocityThreshold != 0.25 {
		t.Errorf("VelocityThreshold = %v, want 0.25", cfg.Gesture.VelocityThreshold)
	}
	// Untouched keys keep their defaults.
	if cfg.Gesture.CarouselDistanceFraction != 0.25 {
		t.Errorf("CarouselDistanceFraction = %v, want default 0.25", cfg.Gesture.CarouselDistanceFraction)
	}
	if cfg.UI.FPS != 30 {
		t.Errorf("FPS = %d, want 30", cfg.UI.FPS)
	}
}

func TestLoadRejectsBadSnapPoints(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		yaml string
	}{
		{name: "descending", yaml: "ui:\n  sheet_snap_points: [0.9, 0.5]\n"},
		{name: "out of range", yaml: "ui:\n  sheet_snap_points: [0.5, 1.5]\n"},
		{name: "zero", yaml: "ui:\n  sheet_snap_points: [0, 0.5]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(p, []byte(tt.yaml), 0o644); err != nil {
				t.Fatalf("WriteFile error: %v", err)
			}
			if _, err := Load(p); err == nil {
				t.Error("Load accepted invalid snap points")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of missing file should error")
	}
}
