package camera

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestNewDefaults(t *testing.T) {
	c := New()
	if c.X != 0 || c.Y != 0 || c.Scale != 1 || c.Angle != 0 {
		t.Errorf("unexpected default pose: %+v", c.Pose())
	}
	if c.Smoothing != DefaultSmoothing {
		t.Errorf("Expected smoothing %v, got %v", DefaultSmoothing, c.Smoothing)
	}
	if got := c.Target(); got != (Target{X: 0, Y: 0, Scale: 1, Angle: 0}) {
		t.Errorf("target should copy initial pose, got %+v", got)
	}
}

func TestNewCopiesPoseIntoTarget(t *testing.T) {
	c := New(WithPosition(10, 5), WithScale(2), WithAngle(0.5))
	want := Target{X: 10, Y: 5, Scale: 2, Angle: 0.5}
	if got := c.Target(); got != want {
		t.Errorf("Expected target %+v, got %+v", want, got)
	}
	if !c.Settled(0) {
		t.Errorf("fresh camera should already be settled")
	}
}

func TestMutatorsOnlyTouchTarget(t *testing.T) {
	c := New(WithPosition(1, 2), WithScale(3), WithAngle(0.25))
	before := c.Pose()

	c.SetTarget(50, 60)
	c.Zoom(2)
	c.Pan(10, 0.3)
	c.Tilt(1)

	if c.Pose() != before {
		t.Errorf("mutators changed the current pose: %+v -> %+v", before, c.Pose())
	}
	if c.Settled(1e-9) {
		t.Errorf("target should differ from pose after mutators")
	}
}

func TestUpdateScenario(t *testing.T) {
	c := New(WithPosition(10, 5), WithScale(2), WithAngle(0))
	c.SetTarget(20, 5)
	c.Update()

	if !almostEqual(c.X, 11.5, 1e-12) {
		t.Errorf("Expected x 11.5, got %v", c.X)
	}
	if c.Y != 5 || c.Scale != 2 || c.Angle != 0 {
		t.Errorf("unexpected pose after one update: %+v", c.Pose())
	}
}

func TestUpdateConvergesGeometrically(t *testing.T) {
	c := New(WithPosition(-3, 7), WithScale(0.5), WithAngle(-1))
	c.SetTarget(40, -12)
	c.Zoom(8)
	c.Tilt(2.5)

	gaps := func() [4]float64 {
		tg := c.Target()
		return [4]float64{
			math.Abs(tg.X - c.X),
			math.Abs(tg.Y - c.Y),
			math.Abs(tg.Scale - c.Scale),
			math.Abs(tg.Angle - c.Angle),
		}
	}

	prev := gaps()
	for i := 0; i < 50; i++ {
		c.Update()
		cur := gaps()
		for f := range cur {
			if cur[f] >= prev[f] {
				t.Fatalf("step %d field %d: gap did not shrink (%v -> %v)", i, f, prev[f], cur[f])
			}
			want := prev[f] * (1 - DefaultSmoothing)
			if !almostEqual(cur[f], want, 1e-9*math.Max(1, prev[f])) {
				t.Fatalf("step %d field %d: expected gap %v, got %v", i, f, want, cur[f])
			}
		}
		prev = cur
	}
}

func TestTiltConverges(t *testing.T) {
	c := New()
	c.Tilt(math.Pi / 2)

	for i := 0; i < 100; i++ {
		c.Update()
	}
	// (pi/2) * 0.85^100 is about 1.4e-7
	if !almostEqual(c.Angle, math.Pi/2, 1e-6) {
		t.Errorf("angle after 100 updates: %v", c.Angle)
	}

	for i := 100; i < 140; i++ {
		c.Update()
	}
	if !almostEqual(c.Angle, math.Pi/2, 1e-9) {
		t.Errorf("angle after 140 updates: %v", c.Angle)
	}
	if c.Angle == math.Pi/2 {
		t.Errorf("angle should approach the target without reaching it exactly")
	}
}

func TestPanAtZeroAngle(t *testing.T) {
	c := New(WithPosition(3, 4))
	c.Pan(7, 0)

	tg := c.Target()
	if tg.X != 3 {
		t.Errorf("Expected target x unchanged at 3, got %v", tg.X)
	}
	if tg.Y != 11 {
		t.Errorf("Expected target y 11, got %v", tg.Y)
	}
}

func TestPanUsesCurrentAngle(t *testing.T) {
	c := New()
	// Target rotation changes but the pose has not moved yet.
	c.Tilt(math.Pi / 2)
	c.Pan(1, 0)

	tg := c.Target()
	if !almostEqual(tg.X, 0, 1e-12) || !almostEqual(tg.Y, 1, 1e-12) {
		t.Errorf("pan should follow current angle 0, got (%v, %v)", tg.X, tg.Y)
	}

	c.Snap()
	c.Pan(1, 0)
	tg = c.Target()
	if !almostEqual(tg.X, 1, 1e-12) || !almostEqual(tg.Y, 1, 1e-12) {
		t.Errorf("pan after quarter turn should move along +x, got (%v, %v)", tg.X, tg.Y)
	}
}

func TestPanRelativeAngle(t *testing.T) {
	c := New()
	c.Pan(2, math.Pi/2)

	tg := c.Target()
	if !almostEqual(tg.X, 2, 1e-12) || !almostEqual(tg.Y, 0, 1e-12) {
		t.Errorf("Expected (2, 0), got (%v, %v)", tg.X, tg.Y)
	}
}

func TestZoomMultiplicative(t *testing.T) {
	a, b := 1.7, 0.3

	c1 := New(WithScale(2))
	c1.Zoom(a)
	c1.Zoom(b)

	c2 := New(WithScale(2))
	c2.Zoom(a * b)

	if !almostEqual(c1.Target().Scale, c2.Target().Scale, 1e-12) {
		t.Errorf("zoom(a) zoom(b) = %v, zoom(a*b) = %v", c1.Target().Scale, c2.Target().Scale)
	}
}

func TestSetTargetOverwrites(t *testing.T) {
	c := New()
	c.Pan(5, 0)
	c.SetTarget(-1, -2)

	tg := c.Target()
	if tg.X != -1 || tg.Y != -2 {
		t.Errorf("Expected target (-1, -2), got (%v, %v)", tg.X, tg.Y)
	}
}

func TestSnapAndSettled(t *testing.T) {
	c := New()
	c.SetTargetPose(Target{X: 1, Y: 2, Scale: 3, Angle: 4})
	if c.Settled(1e-3) {
		t.Fatalf("should not be settled before snap")
	}
	c.Snap()
	if !c.Settled(0) {
		t.Errorf("should be settled after snap, pose %+v", c.Pose())
	}
}

func TestWithSmoothing(t *testing.T) {
	c := New(WithSmoothing(0.5))
	c.SetTarget(10, 0)
	c.Update()
	if c.X != 5 {
		t.Errorf("Expected x 5 with smoothing 0.5, got %v", c.X)
	}
}
