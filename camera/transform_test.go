package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestFocusAspect(t *testing.T) {
	c := New(WithScale(2))
	tr := c.Focus(800, 600)

	hx, hy := tr.HalfExtents()
	if !almostEqual(hx, 2*800.0/600.0, 1e-9) {
		t.Errorf("Expected horizontal half-extent 2.667, got %v", hx)
	}
	if !almostEqual(hy, 2, 1e-9) {
		t.Errorf("Expected vertical half-extent 2, got %v", hy)
	}
	if !almostEqual(hx/hy, 800.0/600.0, 1e-12) {
		t.Errorf("aspect not preserved: %v", hx/hy)
	}
}

func TestFocusCentersOnCamera(t *testing.T) {
	c := New(WithPosition(10, 5), WithScale(2))
	tr := c.Focus(800, 600)

	cases := []struct {
		name   string
		wx, wy float64
		sx, sy float64
	}{
		{"center", 10, 5, 400, 300},
		{"top edge", 10, 7, 400, 0},
		{"bottom edge", 10, 3, 400, 600},
		{"right edge", 10 + 2*800.0/600.0, 5, 800, 300},
	}
	for _, tc := range cases {
		sx, sy := tr.Project(tc.wx, tc.wy)
		if !almostEqual(sx, tc.sx, 1e-6) || !almostEqual(sy, tc.sy, 1e-6) {
			t.Errorf("%s: Expected (%v, %v), got (%v, %v)", tc.name, tc.sx, tc.sy, sx, sy)
		}
	}
}

func TestFocusRotationMatchesPan(t *testing.T) {
	c := New(WithAngle(0.7), WithScale(1))
	c.Pan(1, 0)
	tg := c.Target()

	// Panning forward must land on screen-up from the center.
	tr := c.Focus(600, 600)
	sx, sy := tr.Project(tg.X, tg.Y)
	if !almostEqual(sx, 300, 1e-6) || !almostEqual(sy, 0, 1e-6) {
		t.Errorf("forward pan should project to top center, got (%v, %v)", sx, sy)
	}
}

func TestFocusUnprojectRoundTrip(t *testing.T) {
	c := New(WithPosition(-4, 9), WithScale(3), WithAngle(-1.1))
	tr := c.Focus(1024, 768)

	wx, wy, err := tr.Unproject(100, 650)
	if err != nil {
		t.Fatalf("unproject: %v", err)
	}
	sx, sy := tr.Project(wx, wy)
	if !almostEqual(sx, 100, 1e-6) || !almostEqual(sy, 650, 1e-6) {
		t.Errorf("round trip drifted: (%v, %v)", sx, sy)
	}
}

func TestFocusDoesNotMutate(t *testing.T) {
	c := New(WithPosition(1, 2), WithScale(3), WithAngle(4))
	c.SetTarget(9, 9)
	pose, target := c.Pose(), c.Target()

	c.Focus(800, 600)
	c.HUDMode(800, 600)

	if c.Pose() != pose || c.Target() != target {
		t.Errorf("transform derivation mutated the camera")
	}
}

func TestHUDIndependentOfPose(t *testing.T) {
	c := New()
	first := c.HUDMode(640, 480)

	c.SetTargetPose(Target{X: 100, Y: -50, Scale: 7, Angle: math.Pi / 3})
	c.Snap()
	second := c.HUDMode(640, 480)

	if first.Projection != second.Projection || first.View != second.View {
		t.Errorf("HUD transform changed with camera pose")
	}
}

func TestHUDPixelMapping(t *testing.T) {
	tr := HUD(640, 480)

	cases := []struct {
		hx, hy float64
		sx, sy float64
	}{
		{0, 0, 0, 480},
		{640, 480, 640, 0},
		{320, 240, 320, 240},
	}
	for _, tc := range cases {
		sx, sy := tr.Project(tc.hx, tc.hy)
		if !almostEqual(sx, tc.sx, 1e-9) || !almostEqual(sy, tc.sy, 1e-9) {
			t.Errorf("(%v, %v): Expected (%v, %v), got (%v, %v)", tc.hx, tc.hy, tc.sx, tc.sy, sx, sy)
		}
	}
	if tr.View != mgl64.Ident4() {
		t.Errorf("HUD view should be identity")
	}
}

// A zero-height viewport is a caller error; Focus must still return rather
// than panic, leaving a degenerate projection.
func TestFocusZeroHeight(t *testing.T) {
	c := New(WithScale(2))
	tr := c.Focus(800, 0)

	if got := tr.Projection.At(0, 0); got != 0 {
		t.Errorf("Expected horizontal scale 0 for infinite aspect, got %v", got)
	}
	if got := tr.Projection.At(1, 1); got != 0.5 {
		t.Errorf("Expected vertical scale 0.5, got %v", got)
	}
	if c.X != 0 || c.Y != 0 || c.Scale != 2 {
		t.Errorf("Focus mutated the camera: %+v", c.Pose())
	}
}
