package main

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"glidecam/camera"
)

type ColorState struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

type MarkerState struct {
	ID     string     `yaml:"id"`
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  ColorState `yaml:"color"`
	Title  string     `yaml:"title"`
}

type PathState struct {
	FromID string `yaml:"from_id"`
	ToID   string `yaml:"to_id"`
}

type AppState struct {
	Camera  camera.State  `yaml:"camera"`
	Markers []MarkerState `yaml:"markers"`
	Paths   []PathState   `yaml:"paths"`
}

func toColorState(c color.Color) ColorState {
	r, g, b, a := c.RGBA()
	return ColorState{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

func SaveState(g *Game, filename string) error {
	state := AppState{
		Camera: camera.Snapshot(g.camera),
	}

	for _, m := range g.scene.markers {
		state.Markers = append(state.Markers, MarkerState{
			ID:     m.ID,
			X:      m.X,
			Y:      m.Y,
			Width:  m.Width,
			Height: m.Height,
			Color:  toColorState(m.Color),
			Title:  m.Title,
		})
	}

	for _, p := range g.scene.paths {
		state.Paths = append(state.Paths, PathState{
			FromID: p.FromID,
			ToID:   p.ToID,
		})
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	err = enc.Encode(&state)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	return enc.Close()
}

func LoadState(g *Game, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	var state AppState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("parse %s: %w", filename, err)
	}

	state.Camera.Restore(g.camera)

	scene := &Scene{}
	for _, ms := range state.Markers {
		id := ms.ID
		if id == "" {
			id = NewID()
		}
		scene.markers = append(scene.markers, &Marker{
			ID:     id,
			X:      ms.X,
			Y:      ms.Y,
			Width:  ms.Width,
			Height: ms.Height,
			Color:  color.RGBA{ms.Color.R, ms.Color.G, ms.Color.B, ms.Color.A},
			Title:  ms.Title,
		})
	}

	// Paths that point at missing markers are dropped.
	for _, ps := range state.Paths {
		scene.Connect(ps.FromID, ps.ToID)
	}
	g.scene = scene
	g.focused = nil

	return nil
}
