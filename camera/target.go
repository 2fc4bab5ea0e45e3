package camera

// Target is the pose a Camera is converging toward. A Camera starts with a
// copy of its own pose; Camera.Target returns a copy, never the live value.
type Target struct {
	X, Y  float64
	Scale float64
	Angle float64 // radians
}

// newTarget copies the camera's pose at this instant.
func newTarget(c *Camera) Target {
	return Target{
		X:     c.X,
		Y:     c.Y,
		Scale: c.Scale,
		Angle: c.Angle,
	}
}
