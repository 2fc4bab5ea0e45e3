package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
camera:
  x: 3
  y: -4
  scale: 2.5
input:
  pan_speed: 0.2
scene:
  markers:
    - id: home
      title: Home
      x: 1
      y: 1
scripts:
  - intro.star
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Camera.X != 3 || cfg.Camera.Y != -4 || cfg.Camera.Scale != 2.5 {
		t.Errorf("unexpected camera config: %+v", cfg.Camera)
	}
	if cfg.Camera.Smoothing != DefaultSmoothing {
		t.Errorf("Expected default smoothing, got %v", cfg.Camera.Smoothing)
	}
	if cfg.Input.PanSpeed != 0.2 || cfg.Input.ZoomStep != DefaultZoomStep {
		t.Errorf("unexpected input config: %+v", cfg.Input)
	}
	if cfg.Display.ScreenWidth != DefaultScreenWidth {
		t.Errorf("Expected default width, got %d", cfg.Display.ScreenWidth)
	}
	if len(cfg.Scene.Markers) != 1 || cfg.Scene.Markers[0].Width != DefaultMarkerWidth {
		t.Errorf("unexpected markers: %+v", cfg.Scene.Markers)
	}
	if len(cfg.Scripts) != 1 || cfg.Scripts[0] != "intro.star" {
		t.Errorf("unexpected scripts: %v", cfg.Scripts)
	}
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("camera: [1, 2"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Errorf("Expected parse error")
	}
}

func TestLoadConfigOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadConfigOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Expected fallback, got %v", err)
	}
	if cfg.Camera.Scale != DefaultCameraScale {
		t.Errorf("Expected default scale, got %v", cfg.Camera.Scale)
	}
}

func TestSmoothingOutOfRangeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("camera:\n  smoothing: 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Camera.Smoothing != DefaultSmoothing {
		t.Errorf("Expected smoothing %v, got %v", DefaultSmoothing, cfg.Camera.Smoothing)
	}
}
