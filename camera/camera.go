// Package camera tracks a smoothly interpolated 2D viewpoint and derives the
// projection and view matrices used to draw world content and HUD overlays.
package camera

import "math"

// DefaultSmoothing is the fraction of the remaining gap closed by each Update.
const DefaultSmoothing = 0.15

// Pose is a camera placement: position, half-height of the view volume and
// rotation in radians.
type Pose struct {
	X, Y  float64
	Scale float64
	Angle float64
}

// Camera holds the currently rendered pose and the target it chases.
// Mutators only move the target; Update moves the pose.
type Camera struct {
	X, Y  float64 // World position of the center of the screen
	Scale float64 // Half-height of the view volume; smaller is more zoomed in
	Angle float64

	// Smoothing is the fraction of each gap closed per Update call.
	Smoothing float64

	target Target
}

// Option configures a Camera at construction.
type Option func(*Camera)

// WithPosition sets the initial world position.
func WithPosition(x, y float64) Option {
	return func(c *Camera) {
		c.X, c.Y = x, y
	}
}

// WithScale sets the initial half-height of the view volume.
func WithScale(scale float64) Option {
	return func(c *Camera) {
		c.Scale = scale
	}
}

// WithAngle sets the initial rotation in radians.
func WithAngle(angle float64) Option {
	return func(c *Camera) {
		c.Angle = angle
	}
}

// WithSmoothing overrides DefaultSmoothing.
func WithSmoothing(f float64) Option {
	return func(c *Camera) {
		c.Smoothing = f
	}
}

// New creates a camera at (0, 0), scale 1, angle 0 unless options say
// otherwise. The target starts equal to the initial pose.
func New(opts ...Option) *Camera {
	c := &Camera{
		Scale:     1,
		Smoothing: DefaultSmoothing,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.target = newTarget(c)
	return c
}

// SetTarget overwrites the target position.
func (c *Camera) SetTarget(x, y float64) {
	c.target.X = x
	c.target.Y = y
}

// SetTargetPose overwrites the whole target. It exists for restoring saved
// state and resetting to a configured pose; interactive code should use the
// relative mutators.
func (c *Camera) SetTargetPose(t Target) {
	c.target = t
}

// Zoom multiplies the target scale. factor > 1 zooms out, 0 < factor < 1
// zooms in. Non-positive factors are the caller's problem.
func (c *Camera) Zoom(factor float64) {
	c.target.Scale *= factor
}

// Pan moves the target by length along angle, measured from the camera's
// current facing. Angle 0 is screen-up; the direction is
// (sin(angle+c.Angle), cos(angle+c.Angle)).
func (c *Camera) Pan(length, angle float64) {
	c.target.X += length * math.Sin(angle+c.Angle)
	c.target.Y += length * math.Cos(angle+c.Angle)
}

// Tilt adds angle to the target rotation.
func (c *Camera) Tilt(angle float64) {
	c.target.Angle += angle
}

// Update advances the pose toward the target by Smoothing of the remaining
// distance. It is not scaled by elapsed time, so convergence speed follows
// the call rate.
func (c *Camera) Update() {
	c.X += (c.target.X - c.X) * c.Smoothing
	c.Y += (c.target.Y - c.Y) * c.Smoothing
	c.Scale += (c.target.Scale - c.Scale) * c.Smoothing
	c.Angle += (c.target.Angle - c.Angle) * c.Smoothing
}

// Snap jumps the pose straight to the target.
func (c *Camera) Snap() {
	c.X = c.target.X
	c.Y = c.target.Y
	c.Scale = c.target.Scale
	c.Angle = c.target.Angle
}

// Pose returns the current pose.
func (c *Camera) Pose() Pose {
	return Pose{X: c.X, Y: c.Y, Scale: c.Scale, Angle: c.Angle}
}

// Target returns a copy of the target.
func (c *Camera) Target() Target {
	return c.target
}

// Settled reports whether every field of the pose is within eps of the target.
func (c *Camera) Settled(eps float64) bool {
	return math.Abs(c.target.X-c.X) <= eps &&
		math.Abs(c.target.Y-c.Y) <= eps &&
		math.Abs(c.target.Scale-c.Scale) <= eps &&
		math.Abs(c.target.Angle-c.Angle) <= eps
}
