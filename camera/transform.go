package camera

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a projection/view pair for a viewport of Width x Height.
// Callers bind it to their renderer before issuing draw calls; it replaces
// the fixed-function matrix stack.
type Transform struct {
	Projection mgl64.Mat4
	View       mgl64.Mat4
	Width      float64
	Height     float64
}

// Focus returns the world-space transform: an orthographic volume of
// half-height Scale (half-width Scale*width/height) centered on the camera,
// seen from one unit in front of the plane with the up vector rotated by
// Angle. height must be nonzero.
func (c *Camera) Focus(width, height float64) Transform {
	aspect := width / height
	return Transform{
		Projection: mgl64.Ortho2D(
			-c.Scale*aspect,
			+c.Scale*aspect,
			-c.Scale,
			+c.Scale),
		View: mgl64.LookAt(
			c.X, c.Y, +1.0,
			c.X, c.Y, -1.0,
			math.Sin(c.Angle), math.Cos(c.Angle), 0.0),
		Width:  width,
		Height: height,
	}
}

// HUDMode returns the screen-space transform for overlays. It ignores the
// camera pose entirely.
func (c *Camera) HUDMode(width, height float64) Transform {
	return HUD(width, height)
}

// HUD maps [0, width] x [0, height] onto the viewport with an identity view.
// The origin is the bottom-left corner and y grows upward.
func HUD(width, height float64) Transform {
	return Transform{
		Projection: mgl64.Ortho2D(0, width, 0, height),
		View:       mgl64.Ident4(),
		Width:      width,
		Height:     height,
	}
}

// ViewProjection is Projection * View.
func (t Transform) ViewProjection() mgl64.Mat4 {
	return t.Projection.Mul4(t.View)
}

// HalfExtents returns the horizontal and vertical half-extents of the
// orthographic volume.
func (t Transform) HalfExtents() (float64, float64) {
	return 1 / t.Projection.At(0, 0), 1 / t.Projection.At(1, 1)
}

// Project maps a point on the z=0 plane to window pixels with the origin at
// the top-left, as ebiten lays out its screen.
func (t Transform) Project(x, y float64) (float64, float64) {
	win := mgl64.Project(mgl64.Vec3{x, y, 0}, t.View, t.Projection, 0, 0, int(t.Width), int(t.Height))
	return win.X(), t.Height - win.Y()
}

// Unproject maps window pixels (top-left origin) back onto the z=0 plane.
func (t Transform) Unproject(sx, sy float64) (float64, float64, error) {
	// Any depth works for an orthographic volume; take the plane's own depth.
	win := mgl64.Project(mgl64.Vec3{0, 0, 0}, t.View, t.Projection, 0, 0, int(t.Width), int(t.Height))
	obj, err := mgl64.UnProject(
		mgl64.Vec3{sx, t.Height - sy, win.Z()},
		t.View, t.Projection, 0, 0, int(t.Width), int(t.Height))
	if err != nil {
		return 0, 0, fmt.Errorf("unproject (%.1f, %.1f): %w", sx, sy, err)
	}
	return obj.X(), obj.Y(), nil
}
