package main

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// --- Window ---
	DefaultScreenWidth  = 1024
	DefaultScreenHeight = 768
	DefaultWindowTitle  = "glidecam"

	// --- Camera & View ---
	DefaultCameraX     = 0.0
	DefaultCameraY     = 0.0
	DefaultCameraScale = 6.0
	DefaultSmoothing   = 0.15

	// --- Input ---
	DefaultPanSpeed  = 0.04 // fraction of the view half-height per tick
	DefaultTiltSpeed = 0.03 // radians per tick
	DefaultZoomStep  = 0.1
	DefaultStateFile = "state.yaml"

	// --- Grid ---
	GridSpacing    = 1.0
	GridMajorEvery = 5
	OriginCrossLen = 0.5

	// --- Markers ---
	DefaultMarkerWidth  = 2.0
	DefaultMarkerHeight = 1.2
	MarkerOutline       = 2.0
	PathWidth           = 2.0
	ArrowHeadLength     = 0.3
)

var (
	// --- Colors ---
	ColorBackground    = color.RGBA{30, 30, 35, 255}
	ColorGridMinor     = color.RGBA{255, 255, 255, 12}
	ColorGridMajor     = color.RGBA{255, 255, 255, 30}
	ColorOriginCross   = color.RGBA{255, 100, 100, 150}
	ColorMarkerDefault = color.RGBA{45, 45, 50, 255}
	ColorMarkerHover   = color.RGBA{0, 120, 255, 255}
	ColorMarkerFocused = color.RGBA{50, 205, 50, 255}
	ColorPathDefault   = color.RGBA{200, 200, 200, 255}
	ColorTargetCross   = color.RGBA{255, 200, 50, 200}
)

type Config struct {
	Display   DisplayConfig `yaml:"display"`
	Camera    CameraConfig  `yaml:"camera"`
	Input     InputConfig   `yaml:"input"`
	Scene     SceneConfig   `yaml:"scene"`
	Scripts   []string      `yaml:"scripts"`
	Watch     bool          `yaml:"watch_scripts"`
	StateFile string        `yaml:"state_file"`
	Font      string        `yaml:"font"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type CameraConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Scale     float64 `yaml:"scale"`
	Angle     float64 `yaml:"angle"`
	Smoothing float64 `yaml:"smoothing"`
}

type InputConfig struct {
	PanSpeed  float64 `yaml:"pan_speed"`
	TiltSpeed float64 `yaml:"tilt_speed"`
	ZoomStep  float64 `yaml:"zoom_step"`
}

type SceneConfig struct {
	Markers []MarkerConfig `yaml:"markers"`
	Paths   []PathConfig   `yaml:"paths"`
}

type MarkerConfig struct {
	ID     string     `yaml:"id"`
	Title  string     `yaml:"title"`
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  ColorState `yaml:"color"`
}

type PathConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	cfg := &Config{
		Display: DisplayConfig{
			ScreenWidth:  DefaultScreenWidth,
			ScreenHeight: DefaultScreenHeight,
			WindowTitle:  DefaultWindowTitle,
			Resizable:    true,
		},
		Camera: CameraConfig{
			X:         DefaultCameraX,
			Y:         DefaultCameraY,
			Scale:     DefaultCameraScale,
			Smoothing: DefaultSmoothing,
		},
		Input: InputConfig{
			PanSpeed:  DefaultPanSpeed,
			TiltSpeed: DefaultTiltSpeed,
			ZoomStep:  DefaultZoomStep,
		},
		Scene: SceneConfig{
			Markers: []MarkerConfig{
				{ID: "origin", Title: "Origin", X: -1, Y: -0.6, Color: ColorState{100, 149, 237, 255}},
				{ID: "north", Title: "North", X: -1, Y: 8, Color: ColorState{255, 105, 180, 255}},
				{ID: "east", Title: "East", X: 10, Y: 2, Color: ColorState{60, 179, 113, 255}},
			},
			Paths: []PathConfig{
				{From: "origin", To: "north"},
				{From: "north", To: "east"},
			},
		},
		StateFile: DefaultStateFile,
	}
	cfg.fillDefaults()
	return cfg
}

// LoadConfig reads a YAML config file on top of DefaultConfig. Fields the
// file leaves out keep their defaults.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// LoadConfigOrDefault is LoadConfig that falls back to defaults when the file
// does not exist.
func LoadConfigOrDefault(filename string) (*Config, error) {
	cfg, err := LoadConfig(filename)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("LoadConfig: %s not found, using defaults", filename)
		return DefaultConfig(), nil
	}
	return cfg, err
}

func (c *Config) fillDefaults() {
	if c.Display.ScreenWidth <= 0 {
		c.Display.ScreenWidth = DefaultScreenWidth
	}
	if c.Display.ScreenHeight <= 0 {
		c.Display.ScreenHeight = DefaultScreenHeight
	}
	if c.Camera.Scale <= 0 {
		c.Camera.Scale = DefaultCameraScale
	}
	if c.Camera.Smoothing <= 0 || c.Camera.Smoothing > 1 {
		c.Camera.Smoothing = DefaultSmoothing
	}
	if c.StateFile == "" {
		c.StateFile = DefaultStateFile
	}
	for i := range c.Scene.Markers {
		m := &c.Scene.Markers[i]
		if m.Width <= 0 {
			m.Width = DefaultMarkerWidth
		}
		if m.Height <= 0 {
			m.Height = DefaultMarkerHeight
		}
	}
}
