package camera

// PoseState is the on-disk form of a pose.
type PoseState struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale"`
	Angle float64 `yaml:"angle"`
}

// State captures both the rendered pose and the target so a reload resumes
// mid-transition.
type State struct {
	Pose      PoseState `yaml:"pose"`
	Target    PoseState `yaml:"target"`
	Smoothing float64   `yaml:"smoothing,omitempty"`
}

// Snapshot records c's pose, target and smoothing.
func Snapshot(c *Camera) State {
	return State{
		Pose:      PoseState{X: c.X, Y: c.Y, Scale: c.Scale, Angle: c.Angle},
		Target:    PoseState{X: c.target.X, Y: c.target.Y, Scale: c.target.Scale, Angle: c.target.Angle},
		Smoothing: c.Smoothing,
	}
}

// Restore applies s to c. A missing pose scale becomes 1, a missing target
// scale becomes the pose scale, and a zero smoothing keeps c's value.
func (s State) Restore(c *Camera) {
	pose, target := s.Pose, s.Target
	if pose.Scale == 0 {
		pose.Scale = 1
	}
	if target.Scale == 0 {
		target.Scale = pose.Scale
	}
	c.X, c.Y, c.Scale, c.Angle = pose.X, pose.Y, pose.Scale, pose.Angle
	c.target = Target{X: target.X, Y: target.Y, Scale: target.Scale, Angle: target.Angle}
	if s.Smoothing != 0 {
		c.Smoothing = s.Smoothing
	}
}
