package main

import (
	"image/color"
	"math"

	"glidecam/canvas"
)

// Marker is a titled rectangle in world space. X, Y is the bottom-left
// corner; world y grows upward.
type Marker struct {
	ID            string
	X, Y          float64
	Width, Height float64
	Color         color.Color
	Title         string
}

// Path connects two markers by ID.
type Path struct {
	FromID string
	ToID   string
	Color  color.Color
}

type Scene struct {
	markers []*Marker
	paths   []*Path
}

func NewScene(cfg SceneConfig) *Scene {
	s := &Scene{}
	for _, mc := range cfg.Markers {
		m := s.AddMarker(mc.X, mc.Y, mc.Title)
		if mc.ID != "" {
			m.ID = mc.ID
		}
		m.Width, m.Height = mc.Width, mc.Height
		if mc.Color != (ColorState{}) {
			m.Color = color.RGBA{mc.Color.R, mc.Color.G, mc.Color.B, mc.Color.A}
		}
	}
	for _, pc := range cfg.Paths {
		s.Connect(pc.From, pc.To)
	}
	return s
}

func (s *Scene) AddMarker(x, y float64, title string) *Marker {
	m := &Marker{
		ID:     NewID(),
		X:      x,
		Y:      y,
		Width:  DefaultMarkerWidth,
		Height: DefaultMarkerHeight,
		Color:  ColorMarkerDefault,
		Title:  title,
	}
	s.markers = append(s.markers, m)
	return m
}

// Connect adds a path between two existing markers. Unknown IDs are ignored.
func (s *Scene) Connect(fromID, toID string) *Path {
	if s.MarkerByID(fromID) == nil || s.MarkerByID(toID) == nil {
		return nil
	}
	p := &Path{FromID: fromID, ToID: toID, Color: ColorPathDefault}
	s.paths = append(s.paths, p)
	return p
}

func (s *Scene) Markers() []*Marker {
	return s.markers
}

func (s *Scene) MarkerByID(id string) *Marker {
	for _, m := range s.markers {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// MarkerAt returns the topmost marker containing the world point.
func (s *Scene) MarkerAt(wx, wy float64) *Marker {
	for i := len(s.markers) - 1; i >= 0; i-- {
		m := s.markers[i]
		if wx >= m.X && wx < m.X+m.Width &&
			wy >= m.Y && wy < m.Y+m.Height {
			return m
		}
	}
	return nil
}

func (m *Marker) Center() (float64, float64) {
	return m.X + m.Width/2, m.Y + m.Height/2
}

// Draw renders paths then markers. r must be bound to the camera's world
// transform.
func (s *Scene) Draw(r *canvas.Renderer, hovered, focused *Marker) {
	for _, p := range s.paths {
		from, to := s.MarkerByID(p.FromID), s.MarkerByID(p.ToID)
		if from == nil || to == nil {
			continue
		}
		p.Draw(r, from, to)
	}
	for _, m := range s.markers {
		m.Draw(r, m == hovered, m == focused)
	}
}

func (m *Marker) Draw(r *canvas.Renderer, hovered, focused bool) {
	r.FillRect(m.X, m.Y, m.Width, m.Height, m.Color)

	switch {
	case focused:
		r.StrokeRect(m.X, m.Y, m.Width, m.Height, MarkerOutline, ColorMarkerFocused)
	case hovered:
		r.StrokeRect(m.X, m.Y, m.Width, m.Height, MarkerOutline, ColorMarkerHover)
	}

	// Title sits at the top-left corner and stays upright on screen.
	r.Print(m.Title, m.X, m.Y+m.Height)
}

// Draw renders the path as a line between marker centers with an arrowhead
// at the destination edge.
func (p *Path) Draw(r *canvas.Renderer, from, to *Marker) {
	fx, fy := from.Center()
	tx, ty := to.Center()
	r.StrokeLine(fx, fy, tx, ty, PathWidth, p.Color)

	dx, dy := tx-fx, ty-fy
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length

	// Pull the tip back to the destination rectangle's edge.
	inset := edgeDistance(to, ux, uy)
	tipX, tipY := tx-ux*inset, ty-uy*inset

	const spread = math.Pi / 7
	for _, side := range []float64{-1, 1} {
		a := math.Atan2(-uy, -ux) + side*spread
		r.StrokeLine(tipX, tipY, tipX+ArrowHeadLength*math.Cos(a), tipY+ArrowHeadLength*math.Sin(a), PathWidth, p.Color)
	}
}

// edgeDistance is how far from a marker's center a ray along (ux, uy)
// leaves its rectangle.
func edgeDistance(m *Marker, ux, uy float64) float64 {
	hw, hh := m.Width/2, m.Height/2
	d := math.Inf(1)
	if ux != 0 {
		d = math.Min(d, hw/math.Abs(ux))
	}
	if uy != 0 {
		d = math.Min(d, hh/math.Abs(uy))
	}
	return d
}
